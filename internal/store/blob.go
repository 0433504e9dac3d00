package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("store: task not found")
	ErrNoBlob   = errors.New("store: blob not found")
	ErrPersist  = errors.New("store: persist failed")
)

// BlobStore is the persistence boundary: a key-value store holding whole
// serialized collections. Load returns ErrNoBlob when nothing was saved yet.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
