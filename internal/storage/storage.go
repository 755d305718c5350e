// Package storage provides the persistent document store: JSON documents
// addressed by fixed string keys, read and written whole.
package storage

import (
	"context"
	"errors"
)

// Keys of the documents the application persists. Each key holds one
// JSON-encoded collection, except KeySession which holds a single
// user snapshot.
const (
	KeyUsers         = "users"
	KeyPosts         = "posts"
	KeyComments      = "comments"
	KeyNotifications = "notifications"
	KeySession       = "session"
)

// ErrNotFound is returned when no document exists under the requested key.
var ErrNotFound = errors.New("document not found")

// Store is a key-value store of JSON documents. Every read returns the
// full document and every write replaces it; there are no partial updates.
// Concurrent writers from separate processes are not coordinated — the
// last write to a key wins.
type Store interface {
	// Read returns the document stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write stores value under key, replacing any previous document.
	Write(ctx context.Context, key string, value []byte) error
	// Delete removes the document under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
