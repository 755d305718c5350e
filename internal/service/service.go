// Package service provides the backend business logic for authentication,
// the post feed and comments, delegating persistence to repository
// interfaces.
package service

import (
	"context"
	"errors"
	"time"
)

// DefaultLatency is the simulated network latency applied to most
// operations. It exists to keep parity with the environment the UI was
// built against; set it to zero to disable.
const DefaultLatency = 600 * time.Millisecond

// Failure conditions reported by the services. The HTTP layer maps them
// to status codes; none of them are fatal.
var (
	// ErrInvalidCredentials is returned on a login mismatch. It does not
	// distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when a signup reuses an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned when an update names an unknown user.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when an operation names an unknown post.
	ErrPostNotFound = errors.New("post not found")
)

// timeLabelNow is the creation-time label stamped on new posts and comments.
const timeLabelNow = "Just now"

// wait blocks for the simulated latency d, returning early with the
// context error if the context is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
