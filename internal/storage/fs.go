package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FSStore stores document bytes on the local filesystem under a root
// directory. Saved files are named by a fresh UUID plus the original
// extension so uploads can never collide or traverse outside the root.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &FSStore{root: abs, logger: logger}, nil
}

func (s *FSStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	path := filepath.Join(s.root, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Error("storage save failed", "path", path, "error", err)
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Error("close stored file failed", "path", path, "error", cerr)
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		s.logger.Error("storage write failed", "path", path, "error", err)
		_ = os.Remove(path)
		return "", err
	}
	s.logger.Info("document bytes stored", "path", path, "filename", filename)
	return path, nil
}

func (s *FSStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Remove deletes the object at path. A missing object is success, so
// repeated cleanup of the same path never errors.
func (s *FSStore) Remove(ctx context.Context, path string) error {
	err := os.Remove(path)
	if err == nil {
		s.logger.Info("document bytes removed", "path", path)
		return nil
	}
	if os.IsNotExist(err) {
		s.logger.Debug("document bytes already gone", "path", path)
		return nil
	}
	s.logger.Error("storage remove failed", "path", path, "error", err)
	return err
}
