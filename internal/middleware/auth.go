// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/angelamos/precinct/internal/core"
	"github.com/angelamos/precinct/internal/session"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionIDKey contextKey = "session_id"
)

// RoleSource resolves the current role for a user id. The admin guard
// re-reads the role on every request instead of trusting a login-time
// snapshot, so demotions apply to in-flight sessions immediately.
type RoleSource interface {
	RoleByID(ctx context.Context, id int) (string, error)
}

// SessionAuthenticator resolves the session cookie to a user identity.
// Requests without a valid, unexpired session are rejected with 401.
func SessionAuthenticator(
	sessions session.Store,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				core.Unauthorized(w, "authentication required")
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.Unauthorized(w, "session expired or invalid")
					return
				}
				core.InternalServerError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, sess.UserID)
			ctx = context.WithValue(ctx, SessionIDKey, sess.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on the admin role.
func RequireAdmin(roles RoleSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := GetUserID(r.Context())
			if userID == 0 {
				core.Unauthorized(w, "authentication required")
				return
			}

			role, err := roles.RoleByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					// Session outlived the account.
					core.Unauthorized(w, "account no longer exists")
					return
				}
				core.InternalServerError(w, err)
				return
			}

			if role != "admin" {
				core.Forbidden(w, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetUserID(ctx context.Context) int {
	if id, ok := ctx.Value(UserIDKey).(int); ok {
		return id
	}
	return 0
}

func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(SessionIDKey).(string); ok {
		return id
	}
	return ""
}
