package storage

import (
	"context"
	"io"
)

// Store is the backing byte storage for uploaded documents. Remove is
// idempotent: removing a path that no longer resolves is a silent no-op.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (path string, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
