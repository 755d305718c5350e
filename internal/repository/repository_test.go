package repository

import (
	"context"
	"testing"

	"github.com/atinyakov/EduFeed/internal/models"
	"github.com/atinyakov/EduFeed/internal/storage"
)

func TestInit_SeedsDefaults(t *testing.T) {
	repo := New(storage.NewMemStore())
	ctx := context.Background()

	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	users, err := repo.Users(ctx)
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}

	posts, err := repo.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != len(SeedPosts()) {
		t.Errorf("expected %d seed posts, got %d", len(SeedPosts()), len(posts))
	}
	for _, p := range posts {
		if p.Likes != len(p.LikedBy) {
			t.Errorf("seed post %s: likes = %d, liker set size = %d", p.ID, p.Likes, len(p.LikedBy))
		}
	}

	comments, err := repo.Comments(ctx)
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("expected no comments, got %d", len(comments))
	}

	notifs, err := repo.Notifications(ctx)
	if err != nil {
		t.Fatalf("Notifications failed: %v", err)
	}
	if len(notifs) != 0 {
		t.Errorf("expected no notifications, got %d", len(notifs))
	}
}

func TestInit_DoesNotOverwrite(t *testing.T) {
	repo := New(storage.NewMemStore())
	ctx := context.Background()

	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := repo.SaveUsers(ctx, []models.User{{ID: "u1", Username: "alice"}}); err != nil {
		t.Fatalf("SaveUsers failed: %v", err)
	}

	// second Init must leave existing documents alone
	if err := repo.Init(ctx); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	users, err := repo.Users(ctx)
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Errorf("unexpected users after re-Init: %+v", users)
	}
}

func TestSession_Roundtrip(t *testing.T) {
	repo := New(storage.NewMemStore())
	ctx := context.Background()

	session, err := repo.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if session != nil {
		t.Errorf("expected no session, got %+v", session)
	}

	user := models.User{ID: "u1", Username: "alice", SavedPosts: []string{}}
	if err := repo.SaveSession(ctx, user); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	session, err = repo.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if session == nil || session.ID != "u1" {
		t.Errorf("unexpected session: %+v", session)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	session, err = repo.Session(ctx)
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if session != nil {
		t.Errorf("expected session cleared, got %+v", session)
	}

	// clearing again must still succeed
	if err := repo.ClearSession(ctx); err != nil {
		t.Errorf("ClearSession of absent session failed: %v", err)
	}
}

func TestCollections_Roundtrip(t *testing.T) {
	repo := New(storage.NewMemStore())
	ctx := context.Background()

	posts := []models.Post{{ID: "p1", Content: "hi", LikedBy: []string{}}}
	if err := repo.SavePosts(ctx, posts); err != nil {
		t.Fatalf("SavePosts failed: %v", err)
	}
	got, err := repo.Posts(ctx)
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("unexpected posts: %+v", got)
	}

	comments := []models.Comment{{ID: "c1", PostID: "p1", Content: "hello"}}
	if err := repo.SaveComments(ctx, comments); err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}
	gotComments, err := repo.Comments(ctx)
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(gotComments) != 1 || gotComments[0].PostID != "p1" {
		t.Errorf("unexpected comments: %+v", gotComments)
	}
}
