// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"

	"github.com/atinyakov/EduFeed/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionReader provides the current session snapshot.
type SessionReader interface {
	// CurrentUser returns the logged-in user, or nil when no session exists.
	CurrentUser(ctx context.Context) (*models.User, error)
}

// SessionAuth is a middleware that guards routes behind the persisted
// session: requests are rejected with 401 unless a user is logged in.
//
// On success it stores the session user in the request context, so
// handlers can resolve the acting user without re-reading the store.
func SessionAuth(auth SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.CurrentUser(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, *user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the session user stored by SessionAuth.
// The second return value reports whether a user was present.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}
