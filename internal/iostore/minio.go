package iostore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/imgset/oiprep/pkg/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore implements Store for MinIO and other S3-compatible servers.
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinio creates a store for an S3-compatible endpoint. Credentials
// come from the environment (MINIO_* or AWS_* variables).
func NewMinio(cfg *config.StorageConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" {
		return nil, ConfigError(
			"storage endpoint is required for the minio provider",
		)
	}
	creds := credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvMinio{},
		&credentials.EnvAWS{},
	})
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: true,
	})
	if err != nil {
		return nil, ConfigError("cannot create minio client: " + err.Error())
	}
	return &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

func (s *MinioStore) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put writes data under key.
func (s *MinioStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(
		ctx, s.bucket, s.key(key),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{},
	)
	return err
}

// Upload streams r under key.
func (s *MinioStore) Upload(ctx context.Context, key string, r io.Reader) error {
	_, err := s.client.PutObject(
		ctx, s.bucket, s.key(key), r, -1,
		minio.PutObjectOptions{},
	)
	return err
}

// CopyFrom performs a server-side copy from another bucket on the same
// endpoint.
func (s *MinioStore) CopyFrom(
	ctx context.Context,
	srcBucket, srcKey, dstKey string,
) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{
			Bucket: s.bucket,
			Object: s.key(dstKey),
		},
		minio.CopySrcOptions{
			Bucket: srcBucket,
			Object: srcKey,
		},
	)
	return err
}

// URI returns the s3:// location of key; S3-compatible consumers resolve
// it against the configured endpoint.
func (s *MinioStore) URI(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key(key))
}
