// Package objectstore provides byte storage backends for attachments.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"juridicol/internal/core/apperror"
	"juridicol/internal/domain/archivo"
)

// FS stores objects as files under a root directory. Keys map to relative
// paths; writes go through a temp file and rename so a crash never leaves a
// partial object under its final key.
type FS struct {
	root string
}

var _ archivo.ObjectStore = (*FS)(nil)

// NewFS creates a filesystem store rooted at dir.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create object store root: %w", err)
	}
	return &FS{root: dir}, nil
}

// Put implements archivo.ObjectStore.
func (s *FS) Put(_ context.Context, key string, r io.Reader, size int64) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.NewStorage("prepare object dir", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return apperror.NewStorage("create temp object", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, io.LimitReader(r, size))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return apperror.NewStorage("write object", err)
	}
	if written != size {
		return apperror.NewValidation("object size mismatch").
			WithDetail("expected", size).
			WithDetail("got", written)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperror.NewStorage("store object", err)
	}
	return nil
}

// Get implements archivo.ObjectStore.
func (s *FS) Get(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NewNotFound("object", key)
		}
		return nil, apperror.NewStorage("open object", err)
	}
	return f, nil
}

// Delete implements archivo.ObjectStore. Deleting an absent key is a no-op.
func (s *FS) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return apperror.NewStorage("delete object", err)
	}
	return nil
}

// pathFor rejects keys that would escape the root.
func (s *FS) pathFor(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", apperror.NewValidation("invalid object key").WithDetail("key", key)
	}
	return filepath.Join(s.root, clean), nil
}
