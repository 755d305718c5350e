package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	store := NewPostgresStore(db)
	cleanup := func() { db.Close() }
	return store, mock, cleanup
}

func TestPostgresStore_Read(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM documents WHERE key = $1`)).
		WithArgs(KeyUsers).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	got, err := store.Read(context.Background(), KeyUsers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Read = %q; want %q", got, `[]`)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_ReadMissing(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM documents WHERE key = $1`)).
		WithArgs(KeySession).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := store.Read(context.Background(), KeySession)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Write(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	value := []byte(`[{"id":"p1"}]`)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO documents (key, value) VALUES ($1, $2)`)).
		WithArgs(KeyPosts, value).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Write(context.Background(), KeyPosts, value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_WriteError(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO documents (key, value) VALUES ($1, $2)`)).
		WithArgs(KeyPosts, []byte(`[]`)).
		WillReturnError(errors.New("insert failed"))

	if err := store.Write(context.Background(), KeyPosts, []byte(`[]`)); err == nil {
		t.Errorf("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE key = $1`)).
		WithArgs(KeySession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Delete(context.Background(), KeySession); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
