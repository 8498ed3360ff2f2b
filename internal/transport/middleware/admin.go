package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

type adminLookup interface {
	GetAdmin(ctx context.Context, userID uuid.UUID) (*domain.AdminRecord, error)
}

// Admin resolves the authenticated user's admin record and stores the flag
// and role in the context. Admin status comes from the database on every
// request, never from token claims, so demotion takes effect immediately.
// Anonymous requests pass through untouched.
func Admin(admins adminLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			rec, err := admins.GetAdmin(r.Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := ctxutil.WithAdmin(r.Context(), true)
			ctx = ctxutil.WithAdminRole(ctx, rec.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose user has no admin record.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin rejects requests from anyone below super-admin.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.AdminRoleFromCtx(r.Context()) != domain.AdminRoleSuperAdmin.String() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
