// Package storage issues pre-signed upload URLs against S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/identity"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Signer issues a time-limited write-only URL for one object key.
type Signer interface {
	SignUpload(ctx context.Context, key, contentType string) (string, error)
}

// S3Signer signs PUT URLs against a bucket. Each call is stateless; nothing
// verifies later that the object was actually uploaded.
type S3Signer struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// NewS3Signer builds a signer from the storage configuration.
func NewS3Signer(cfg *config.Config) (*S3Signer, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage client: %w", err)
	}
	return &S3Signer{
		client: client,
		bucket: cfg.S3Bucket,
		expiry: time.Duration(cfg.UploadURLTTLMins) * time.Minute,
	}, nil
}

// SignUpload returns a pre-signed PUT URL for key, scoped to contentType.
func (s *S3Signer) SignUpload(ctx context.Context, key, contentType string) (string, error) {
	header := http.Header{"Content-Type": []string{contentType}}
	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, s.expiry, url.Values{}, header)
	if err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}
	return u.String(), nil
}

// UploadKey builds a random banner object key: <token>-<unix>.jpeg.
func UploadKey() string {
	return fmt.Sprintf("%s-%d.jpeg", identity.RandomToken(16), time.Now().Unix())
}
