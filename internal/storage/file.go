package storage

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each document as a <key>.json file inside a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir, creating the directory
// if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Read returns the document stored under key, or ErrNotFound if the file
// does not exist.
func (fs *FileStore) Read(ctx context.Context, key string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write replaces the document stored under key.
func (fs *FileStore) Write(ctx context.Context, key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return os.WriteFile(fs.path(key), value, 0644)
}

// Delete removes the document under key. A missing file is not an error.
func (fs *FileStore) Delete(ctx context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
