package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atinyakov/EduFeed/internal/models"
)

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// Users returns the full user collection.
	Users(ctx context.Context) ([]models.User, error)
	// SaveUsers persists the full user collection.
	SaveUsers(ctx context.Context, users []models.User) error
	// Session returns the current session snapshot, or nil if absent.
	Session(ctx context.Context) (*models.User, error)
	// SaveSession replaces the session snapshot.
	SaveSession(ctx context.Context, user models.User) error
	// ClearSession removes the session snapshot.
	ClearSession(ctx context.Context) error
}

// AuthService implements authentication and profile operations by
// delegating to an AuthRepository.
type AuthService struct {
	// repo performs the data-layer operations.
	repo AuthRepository
	// latency is the simulated network latency per operation.
	latency time.Duration
}

// NewAuthService constructs an AuthService using the provided repository
// and simulated latency.
func NewAuthService(repo AuthRepository, latency time.Duration) *AuthService {
	return &AuthService{repo: repo, latency: latency}
}

// Login authenticates by exact username and password match. On success the
// matched user becomes the session snapshot and is returned. A mismatch
// yields ErrInvalidCredentials regardless of which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	users, err := s.repo.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			if err := s.repo.SaveSession(ctx, u); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Signup creates a new user with the given credentials. The username must
// not already exist (case-sensitive match), otherwise ErrUsernameTaken is
// returned. The new user starts without premium access and with an empty
// saved-post set, and becomes the current session.
func (s *AuthService) Signup(ctx context.Context, username, password string) (models.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	users, err := s.repo.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return models.User{}, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:         uuid.NewString(),
		Username:   username,
		Password:   password,
		IsPremium:  false,
		Avatar:     fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
		SavedPosts: []string{},
	}

	users = append(users, user)
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	if err := s.repo.SaveSession(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the session snapshot. It succeeds even when no session
// exists.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}
	return s.repo.ClearSession(ctx)
}

// CurrentUser returns the session snapshot, or nil when nobody is logged
// in. It never waits the simulated latency: this call gates the initial
// UI paint.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.repo.Session(ctx)
}

// UpdateUser replaces the stored record whose ID matches user. The record
// is overwritten whole, not merged, so callers must send the complete
// user. When the updated user is the current session, the session snapshot
// is refreshed too. An unknown ID yields ErrUserNotFound and leaves the
// store unchanged.
func (s *AuthService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return models.User{}, err
	}

	users, err := s.repo.Users(ctx)
	if err != nil {
		return models.User{}, err
	}

	index := -1
	for i := range users {
		if users[i].ID == user.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.User{}, ErrUserNotFound
	}

	users[index] = user
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}

	session, err := s.repo.Session(ctx)
	if err != nil {
		return models.User{}, err
	}
	if session != nil && session.ID == user.ID {
		if err := s.repo.SaveSession(ctx, user); err != nil {
			return models.User{}, err
		}
	}
	return user, nil
}
