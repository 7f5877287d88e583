// Package iostore abstracts the destination object store that receives
// selected images and the labeling manifest.
package iostore

import (
	"context"
	"io"

	"github.com/imgset/oiprep/pkg/config"
)

// Store is the destination object store. Keys are relative to the
// store's configured prefix.
type Store interface {
	// Put writes data under key.
	Put(ctx context.Context, key string, data []byte) error

	// Upload streams r under key.
	Upload(ctx context.Context, key string, r io.Reader) error

	// CopyFrom copies an object from a source bucket of the same
	// provider into the store under dstKey. Copies are server-side
	// where the provider supports it.
	CopyFrom(ctx context.Context, srcBucket, srcKey, dstKey string) error

	// URI returns the full location of key, e.g.
	// "s3://bucket/prefix/key" or a filesystem path for local stores.
	URI(key string) string
}

// New creates the store selected by the configuration.
func New(ctx context.Context, cfg *config.StorageConfig) (Store, error) {
	if cfg.Bucket == "" {
		return nil, ConfigError("storage bucket is not set")
	}
	switch cfg.Provider {
	case "s3":
		return NewS3(ctx, cfg)
	case "minio":
		return NewMinio(cfg)
	case "local":
		return NewLocal(cfg), nil
	default:
		return nil, ConfigError(
			"unknown storage provider " + cfg.Provider,
		)
	}
}
