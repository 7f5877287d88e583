package iostore

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/imgset/oiprep/pkg/config"
)

// LocalStore implements Store on the local filesystem. It serves tests
// and offline dry runs; the configured bucket is a directory path and
// CopyFrom reads the source "bucket" as a directory too.
type LocalStore struct {
	root   string
	prefix string
}

// NewLocal creates a filesystem store rooted at the configured bucket
// path.
func NewLocal(cfg *config.StorageConfig) *LocalStore {
	return &LocalStore{root: cfg.Bucket, prefix: cfg.Prefix}
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(s.prefix), key)
}

// Put writes data under key.
func (s *LocalStore) Put(_ context.Context, key string, data []byte) error {
	dest := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

// Upload streams r under key.
func (s *LocalStore) Upload(_ context.Context, key string, r io.Reader) error {
	dest := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// CopyFrom copies a file from the source directory tree.
func (s *LocalStore) CopyFrom(
	_ context.Context,
	srcBucket, srcKey, dstKey string,
) error {
	src, err := os.Open(filepath.Join(srcBucket, filepath.FromSlash(srcKey)))
	if err != nil {
		return err
	}
	defer src.Close()

	dest := s.path(dstKey)
	if err = os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	return err
}

// URI returns the filesystem path of key.
func (s *LocalStore) URI(key string) string {
	return s.path(key)
}
