package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_ReadMissing(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	_, err = fs.Read(context.Background(), KeyUsers)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_WriteRead(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	want := []byte(`[{"id":"1"}]`)
	if err := fs.Write(context.Background(), KeyPosts, want); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := fs.Read(context.Background(), KeyPosts)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Read = %q; want %q", got, want)
	}

	// document lands in <key>.json
	if _, err := os.Stat(filepath.Join(dir, "posts.json")); err != nil {
		t.Errorf("expected posts.json on disk: %v", err)
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	ctx := context.Background()
	if err := fs.Write(ctx, KeyUsers, []byte(`[]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := fs.Write(ctx, KeyUsers, []byte(`[{"id":"2"}]`)); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	got, err := fs.Read(ctx, KeyUsers)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `[{"id":"2"}]` {
		t.Errorf("expected last write to win, got %q", got)
	}
}

func TestFileStore_Delete(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	ctx := context.Background()
	if err := fs.Write(ctx, KeySession, []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := fs.Delete(ctx, KeySession); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := fs.Read(ctx, KeySession); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// deleting again must not fail
	if err := fs.Delete(ctx, KeySession); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestMemStore(t *testing.T) {
	ms := NewMemStore()
	ctx := context.Background()

	if _, err := ms.Read(ctx, KeyComments); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := ms.Write(ctx, KeyComments, []byte(`[]`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := ms.Read(ctx, KeyComments)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Read = %q; want %q", got, `[]`)
	}

	if err := ms.Delete(ctx, KeyComments); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := ms.Read(ctx, KeyComments); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
