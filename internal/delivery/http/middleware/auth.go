package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventguestbook/internal/delivery/http/session"
	"eventguestbook/internal/domain"
)

type contextKey string

const userKey contextKey = "currentUser"

// SetUser returns a context with the authenticated user set. Used by the auth guards.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user from the context, if present.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// IdentityLoader resolves a session user ID to a full user record. The user
// is reloaded on every guarded request so the role is always current.
type IdentityLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireUser returns a wrapper that rejects unauthenticated requests with a
// redirect to /login and never calls next for them. On success the loaded
// user is placed in the request context.
func RequireUser(sessions *session.Manager, users IdentityLoader, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, ok := loadIdentity(w, r, sessions, users, logger)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next(w, r.WithContext(SetUser(r.Context(), user)))
		}
	}
}

// RequireAdmin is RequireUser plus the administrator check: an authenticated
// non-admin is sent back to the home page without the handler running.
func RequireAdmin(sessions *session.Manager, users IdentityLoader, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, ok := loadIdentity(w, r, sessions, users, logger)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !user.IsAdmin {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next(w, r.WithContext(SetUser(r.Context(), user)))
		}
	}
}

// loadIdentity resolves the session cookie to a user. A cookie pointing at a
// user that no longer exists is treated as no identity and cleared.
func loadIdentity(w http.ResponseWriter, r *http.Request, sessions *session.Manager, users IdentityLoader, logger *slog.Logger) (*domain.User, bool) {
	userID, ok := sessions.UserID(r)
	if !ok {
		return nil, false
	}
	user, err := users.GetByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			logger.ErrorContext(r.Context(), "identity lookup failed", "user_id", userID, "err", err)
		}
		_ = sessions.SignOut(w, r)
		return nil, false
	}
	return user, true
}
