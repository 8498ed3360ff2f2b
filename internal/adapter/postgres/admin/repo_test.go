package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres/admin"
	"github.com/infinitevocab/backend/internal/adapter/postgres/testhelper"
	"github.com/infinitevocab/backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*admin.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return admin.New(pool), pool
}

func TestRepo_CreateAdmin_AndGetAdmin(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	promoter := testhelper.SeedAdmin(t, pool, domain.AdminRoleSuperAdmin)

	created, err := repo.CreateAdmin(ctx, &domain.AdminRecord{
		UserID:     u.ID,
		Role:       domain.AdminRoleAdmin,
		AssignedBy: promoter.ID,
	})
	if err != nil {
		t.Fatalf("CreateAdmin: unexpected error: %v", err)
	}
	if created.Role != domain.AdminRoleAdmin {
		t.Errorf("Role = %q, want %q", created.Role, domain.AdminRoleAdmin)
	}
	if created.AssignedBy != promoter.ID {
		t.Errorf("AssignedBy = %s, want %s", created.AssignedBy, promoter.ID)
	}

	got, err := repo.GetAdmin(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetAdmin: unexpected error: %v", err)
	}
	if got.UserID != u.ID {
		t.Errorf("UserID = %s, want %s", got.UserID, u.ID)
	}
}

func TestRepo_GetAdmin_NotAnAdmin(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)

	u := testhelper.SeedUser(t, pool)

	_, err := repo.GetAdmin(context.Background(), u.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_CreateAdmin_AlreadyAdmin(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	existing := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)

	_, err := repo.CreateAdmin(ctx, &domain.AdminRecord{
		UserID:     existing.ID,
		Role:       domain.AdminRoleAdmin,
		AssignedBy: existing.ID,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestRepo_UpdateRole(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	existing := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)

	got, err := repo.UpdateRole(ctx, existing.ID, domain.AdminRoleSuperAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: unexpected error: %v", err)
	}
	if got.Role != domain.AdminRoleSuperAdmin {
		t.Errorf("Role = %q, want %q", got.Role, domain.AdminRoleSuperAdmin)
	}

	if _, err := repo.UpdateRole(ctx, uuid.New(), domain.AdminRoleAdmin); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown admin, got: %v", err)
	}
}

func TestRepo_DeleteAdmin(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	existing := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)

	if err := repo.DeleteAdmin(ctx, existing.ID); err != nil {
		t.Fatalf("DeleteAdmin: unexpected error: %v", err)
	}
	if _, err := repo.GetAdmin(ctx, existing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after demote, got: %v", err)
	}
	if err := repo.DeleteAdmin(ctx, existing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second demote, got: %v", err)
	}
}

func TestRepo_StudentLinks(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	adminUser := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)
	student := testhelper.SeedUser(t, pool)

	created, err := repo.CreateStudentLink(ctx, &domain.AdminStudentLink{
		ID:        domain.AdminStudentLinkID(adminUser.ID, student.ID),
		AdminID:   adminUser.ID,
		StudentID: student.ID,
	})
	if err != nil {
		t.Fatalf("CreateStudentLink: unexpected error: %v", err)
	}

	got, err := repo.GetStudentLink(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetStudentLink: unexpected error: %v", err)
	}
	if got.StudentID != student.ID {
		t.Errorf("StudentID = %s, want %s", got.StudentID, student.ID)
	}

	byStudent, err := repo.GetLinkByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("GetLinkByStudent: unexpected error: %v", err)
	}
	if byStudent.AdminID != adminUser.ID {
		t.Errorf("AdminID = %s, want %s", byStudent.AdminID, adminUser.ID)
	}

	if err := repo.DeleteStudentLink(ctx, created.ID); err != nil {
		t.Fatalf("DeleteStudentLink: unexpected error: %v", err)
	}
	if _, err := repo.GetLinkByStudent(ctx, student.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after unassign, got: %v", err)
	}
}

func TestRepo_StudentLinks_ExclusiveAssignment(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	first := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)
	second := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)
	student := testhelper.SeedUser(t, pool)

	if _, err := repo.CreateStudentLink(ctx, &domain.AdminStudentLink{
		ID:        domain.AdminStudentLinkID(first.ID, student.ID),
		AdminID:   first.ID,
		StudentID: student.ID,
	}); err != nil {
		t.Fatalf("CreateStudentLink: unexpected error: %v", err)
	}

	// The unique index on student_id blocks a second assignment even under
	// a different composite id.
	_, err := repo.CreateStudentLink(ctx, &domain.AdminStudentLink{
		ID:        domain.AdminStudentLinkID(second.ID, student.ID),
		AdminID:   second.ID,
		StudentID: student.ID,
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestRepo_ListStudents(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	adminUser := testhelper.SeedAdmin(t, pool, domain.AdminRoleAdmin)
	s1 := testhelper.SeedUser(t, pool)
	s2 := testhelper.SeedUser(t, pool)

	for _, s := range []uuid.UUID{s1.ID, s2.ID} {
		if _, err := repo.CreateStudentLink(ctx, &domain.AdminStudentLink{
			ID:        domain.AdminStudentLinkID(adminUser.ID, s),
			AdminID:   adminUser.ID,
			StudentID: s,
		}); err != nil {
			t.Fatalf("CreateStudentLink: unexpected error: %v", err)
		}
	}

	students, err := repo.ListStudents(ctx, adminUser.ID)
	if err != nil {
		t.Fatalf("ListStudents: unexpected error: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("len = %d, want 2", len(students))
	}
	for _, s := range students {
		if s.Code == "" {
			t.Error("student code should be populated")
		}
	}
}
