// Package http provides the HTTP handlers and routing for the EduFeed API.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/atinyakov/EduFeed/internal/middleware"
	"github.com/atinyakov/EduFeed/internal/models"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login authenticates by username and password and persists the session.
	Login(ctx context.Context, username, password string) (models.User, error)
	// Signup creates a new user and persists the session.
	Signup(ctx context.Context, username, password string) (models.User, error)
	// Logout clears the session.
	Logout(ctx context.Context) error
	// CurrentUser returns the session snapshot, or nil when absent.
	CurrentUser(ctx context.Context) (*models.User, error)
	// UpdateUser replaces the stored user record whole.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// AuthHandler handles HTTP requests for registration, login and profile
// updates.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Username is the login name.
	Username string `json:"username"`
	// Password is the plaintext password.
	Password string `json:"password"`
}

// UserResponse is the success envelope carrying a user record.
type UserResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

// Register handles signup requests. It expects a JSON body with non-empty
// "username" and "password" fields. A duplicate username yields 409; on
// success the new user is returned and becomes the session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, UserResponse{Success: true, User: user})
}

// Login handles login requests. A credential mismatch yields 401 without
// revealing whether the username or the password was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, UserResponse{Success: true, User: user})
}

// Logout clears the session. It succeeds even when nobody is logged in.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"success": true})
}

// Me returns the current session user, or JSON null when nobody is
// logged in.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, user)
}

// UpdateUser replaces the caller's user record. The body must carry the
// complete record; only the session user may be updated through this
// endpoint.
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil || user.ID == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if user.ID != session.ID {
		http.Error(w, "cannot update another user", http.StatusForbidden)
		return
	}

	updated, err := h.AuthService.UpdateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, UserResponse{Success: true, User: updated})
}
