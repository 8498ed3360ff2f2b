// Package admin implements persistence for admin records and admin-student
// assignments using PostgreSQL. Assignment rows are keyed by the composite
// id "{adminID}_{studentID}"; a unique index on student_id keeps each
// student assigned to at most one admin.
package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const (
	adminColumns = `user_id, role, assigned_by, created_at, updated_at`
	linkColumns  = `id, admin_id, student_id, created_at`
)

const (
	getAdminQuery = `SELECT ` + adminColumns + ` FROM admins WHERE user_id = $1`

	createAdminQuery = `INSERT INTO admins (user_id, role, assigned_by)
		VALUES ($1, $2, $3)
		RETURNING ` + adminColumns

	updateRoleQuery = `UPDATE admins SET role = $2 WHERE user_id = $1
		RETURNING ` + adminColumns

	deleteAdminQuery = `DELETE FROM admins WHERE user_id = $1`

	listAdminsQuery = `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at`

	createLinkQuery = `INSERT INTO admin_students (id, admin_id, student_id)
		VALUES ($1, $2, $3)
		RETURNING ` + linkColumns

	getLinkQuery = `SELECT ` + linkColumns + ` FROM admin_students WHERE id = $1`

	getLinkByStudentQuery = `SELECT ` + linkColumns + ` FROM admin_students WHERE student_id = $1`

	deleteLinkQuery = `DELETE FROM admin_students WHERE id = $1`

	listStudentsQuery = `SELECT u.id, u.name, u.code, u.total_score, false, u.created_at, u.updated_at
		FROM admin_students l
		JOIN users u ON u.id = l.student_id
		WHERE l.admin_id = $1
		ORDER BY l.created_at, l.id`
)

// Repo provides admin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetAdmin returns the admin record for the user, or ErrNotFound when the
// user is not an admin.
func (r *Repo) GetAdmin(ctx context.Context, userID uuid.UUID) (*domain.AdminRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanAdmin(q.QueryRow(ctx, getAdminQuery, userID))
	if err != nil {
		return nil, postgres.MapError(err, "admin", userID.String())
	}
	return rec, nil
}

// CreateAdmin promotes a user by inserting its admin record.
func (r *Repo) CreateAdmin(ctx context.Context, rec *domain.AdminRecord) (*domain.AdminRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanAdmin(q.QueryRow(ctx, createAdminQuery,
		rec.UserID, string(rec.Role), rec.AssignedBy))
	if err != nil {
		return nil, postgres.MapError(err, "admin", rec.UserID.String())
	}
	return created, nil
}

// UpdateRole changes the admin's role.
func (r *Repo) UpdateRole(ctx context.Context, userID uuid.UUID, role domain.AdminRole) (*domain.AdminRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanAdmin(q.QueryRow(ctx, updateRoleQuery, userID, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "admin", userID.String())
	}
	return rec, nil
}

// DeleteAdmin demotes a user by removing its admin record.
func (r *Repo) DeleteAdmin(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteAdminQuery, userID)
	if err != nil {
		return postgres.MapError(err, "admin", userID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("admin %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ListAdmins returns all admin records ordered by promotion time.
func (r *Repo) ListAdmins(ctx context.Context) ([]domain.AdminRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listAdminsQuery)
	if err != nil {
		return nil, postgres.MapError(err, "admin", "")
	}
	defer rows.Close()

	var records []domain.AdminRecord
	for rows.Next() {
		rec, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admins: %w", err)
	}
	return records, nil
}

// CreateStudentLink assigns a student to an admin.
func (r *Repo) CreateStudentLink(ctx context.Context, l *domain.AdminStudentLink) (*domain.AdminStudentLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLink(q.QueryRow(ctx, createLinkQuery, l.ID, l.AdminID, l.StudentID))
	if err != nil {
		return nil, postgres.MapError(err, "admin_student_link", l.ID)
	}
	return created, nil
}

// GetStudentLink returns an assignment by composite id.
func (r *Repo) GetStudentLink(ctx context.Context, id string) (*domain.AdminStudentLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLink(q.QueryRow(ctx, getLinkQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "admin_student_link", id)
	}
	return l, nil
}

// GetLinkByStudent returns the assignment holding the student, regardless of
// which admin holds it, or ErrNotFound when the student is unassigned.
func (r *Repo) GetLinkByStudent(ctx context.Context, studentID uuid.UUID) (*domain.AdminStudentLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLink(q.QueryRow(ctx, getLinkByStudentQuery, studentID))
	if err != nil {
		return nil, postgres.MapError(err, "admin_student_link", studentID.String())
	}
	return l, nil
}

// DeleteStudentLink removes an assignment by composite id.
func (r *Repo) DeleteStudentLink(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteLinkQuery, id)
	if err != nil {
		return postgres.MapError(err, "admin_student_link", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("admin_student_link %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListStudents returns the admin's assigned students, oldest assignment
// first. Students are never admins, so IsAdmin is returned as false.
func (r *Repo) ListStudents(ctx context.Context, adminID uuid.UUID) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listStudentsQuery, adminID)
	if err != nil {
		return nil, postgres.MapError(err, "admin_student_link", "")
	}
	defer rows.Close()

	var students []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Code, &u.TotalScore, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return students, nil
}

func scanAdmin(r pgx.Row) (*domain.AdminRecord, error) {
	var rec domain.AdminRecord
	var role string
	err := r.Scan(&rec.UserID, &role, &rec.AssignedBy, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Role = domain.AdminRole(role)
	return &rec, nil
}

func scanLink(r pgx.Row) (*domain.AdminStudentLink, error) {
	var l domain.AdminStudentLink
	err := r.Scan(&l.ID, &l.AdminID, &l.StudentID, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
