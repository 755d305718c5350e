// Package repository provides typed access to the persisted collections
// on top of the document store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atinyakov/EduFeed/internal/models"
	"github.com/atinyakov/EduFeed/internal/storage"
)

// Repository reads and writes the application collections as whole JSON
// documents. Every load decodes the full collection and every save encodes
// and persists it back; there are no partial updates or indices.
type Repository struct {
	// store is the underlying document store.
	store storage.Store
}

// New constructs a Repository over the given document store.
func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Init seeds the collections on first use: users, comments and notifications
// start empty, posts start with the seed feed. Existing documents are never
// overwritten, so Init is safe to call on every startup.
func (r *Repository) Init(ctx context.Context) error {
	defaults := []struct {
		key   string
		value any
	}{
		{storage.KeyUsers, []models.User{}},
		{storage.KeyPosts, SeedPosts()},
		{storage.KeyComments, []models.Comment{}},
		{storage.KeyNotifications, []models.Notification{}},
	}

	for _, d := range defaults {
		_, err := r.store.Read(ctx, d.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("init %q: %w", d.key, err)
		}
		if err := r.save(ctx, d.key, d.value); err != nil {
			return fmt.Errorf("init %q: %w", d.key, err)
		}
	}
	return nil
}

func (r *Repository) load(ctx context.Context, key string, dst any) error {
	data, err := r.store.Read(ctx, key)
	if err != nil {
		return fmt.Errorf("load %q: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := r.store.Write(ctx, key, data); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Users returns the full user collection.
func (r *Repository) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.load(ctx, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers persists the full user collection.
func (r *Repository) SaveUsers(ctx context.Context, users []models.User) error {
	return r.save(ctx, storage.KeyUsers, users)
}

// Posts returns the full post collection in storage order (newest first).
func (r *Repository) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.load(ctx, storage.KeyPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SavePosts persists the full post collection.
func (r *Repository) SavePosts(ctx context.Context, posts []models.Post) error {
	return r.save(ctx, storage.KeyPosts, posts)
}

// Comments returns the full comment collection in insertion order.
func (r *Repository) Comments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.load(ctx, storage.KeyComments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// SaveComments persists the full comment collection.
func (r *Repository) SaveComments(ctx context.Context, comments []models.Comment) error {
	return r.save(ctx, storage.KeyComments, comments)
}

// Notifications returns the full notification collection.
func (r *Repository) Notifications(ctx context.Context) ([]models.Notification, error) {
	var notifs []models.Notification
	if err := r.load(ctx, storage.KeyNotifications, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// SaveNotifications persists the full notification collection.
func (r *Repository) SaveNotifications(ctx context.Context, notifs []models.Notification) error {
	return r.save(ctx, storage.KeyNotifications, notifs)
}

// Session returns the current session snapshot, or nil if no session exists.
func (r *Repository) Session(ctx context.Context) (*models.User, error) {
	var user models.User
	err := r.load(ctx, storage.KeySession, &user)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// SaveSession replaces the session snapshot with a copy of user.
func (r *Repository) SaveSession(ctx context.Context, user models.User) error {
	return r.save(ctx, storage.KeySession, user)
}

// ClearSession removes the session snapshot. Clearing an absent session
// succeeds.
func (r *Repository) ClearSession(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeySession)
}
