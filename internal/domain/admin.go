package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AdminRole is the privilege level held by an admin record.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super-admin"
)

func (r AdminRole) String() string { return string(r) }

func (r AdminRole) IsValid() bool {
	switch r {
	case AdminRoleAdmin, AdminRoleSuperAdmin:
		return true
	}
	return false
}

// AdminRecord marks a user as an admin. Keyed by the user's id; its
// presence is what makes a user an admin.
type AdminRecord struct {
	UserID     uuid.UUID
	Role       AdminRole
	AssignedBy uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdminStudentLink assigns a student to an admin. A student appears in at
// most one link system-wide; the unique index on student_id enforces it.
type AdminStudentLink struct {
	ID        string
	AdminID   uuid.UUID
	StudentID uuid.UUID
	CreatedAt time.Time
}

// AdminStudentLinkID builds the deterministic composite id "{adminID}_{studentID}".
// Same public-contract status as WordCategoryLinkID.
func AdminStudentLinkID(adminID, studentID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", adminID, studentID)
}

// ScoreHistoryEntry records one admin score adjustment. Append-only:
// entries are never mutated or deleted.
type ScoreHistoryEntry struct {
	ID            uuid.UUID
	StudentID     uuid.UUID
	AdminID       uuid.UUID
	ScoreDelta    int64
	NewTotalScore int64
	Reason        string
	CreatedAt     time.Time
}
