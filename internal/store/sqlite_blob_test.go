package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/assignd/internal/model"
)

func setupBlobStore(t *testing.T) *SQLiteBlobStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "assignd-test.db")
	blobs, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = blobs.Close() })
	return blobs
}

func TestSQLiteBlobSaveAndLoad(t *testing.T) {
	blobs := setupBlobStore(t)
	ctx := context.Background()

	if _, err := blobs.Load(ctx, BlobKey); !errors.Is(err, ErrNoBlob) {
		t.Fatalf("expected ErrNoBlob for fresh store, got: %v", err)
	}

	if err := blobs.Save(ctx, BlobKey, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := blobs.Save(ctx, BlobKey, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("overwrite save: %v", err)
	}

	raw, err := blobs.Load(ctx, BlobKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(raw) != `[{"id":"a"}]` {
		t.Fatalf("unexpected blob contents: %s", raw)
	}
}

func TestStoreOverSQLiteBlob(t *testing.T) {
	blobs := setupBlobStore(t)
	ctx := context.Background()

	s := New(blobs)
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	deadline := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	task, err := s.Create(ctx, model.Draft{Title: "Essay", Subject: "English", Deadline: deadline})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded := New(blobs)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok := reloaded.Get(task.ID)
	if !ok || got.Title != "Essay" {
		t.Fatalf("expected task after reload, got %#v ok=%v", got, ok)
	}
}
