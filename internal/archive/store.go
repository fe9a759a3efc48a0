package archive

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store uploads demo files to an S3-compatible bucket (DigitalOcean Spaces
// in production) and hands out public download URLs.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var _ BlobStore = (*Store)(nil)

// NewStore creates a new object storage client. endpoint is the bare host
// (no scheme); baseURL is the public address objects are served from, e.g.
// the bucket's CDN origin.
func NewStore(endpoint, accessKey, secretKey, bucket, baseURL string) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return &Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores data under key in the configured bucket.
func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	log.Debug("Uploading object", "bucket", s.bucket, "key", key, "bytes", len(data))
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	log.Info("Uploaded object", "bucket", s.bucket, "key", key, "bytes", len(data))
	return nil
}

// PublicURL returns the public address of an uploaded key.
func (s *Store) PublicURL(key string) string {
	return s.baseURL + "/" + key
}
