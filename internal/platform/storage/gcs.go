// Package storage provides the Google Cloud Storage implementation of the
// document image store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"fanbase_backend/internal/feature/user/usecase"
)

// GCSDocumentStorage stores document images in a GCS bucket and serves
// them through their public URLs.
type GCSDocumentStorage struct {
	client *storage.Client
	bucket string
}

// Compile-time check that GCSDocumentStorage implements DocumentStorage.
var _ usecase.DocumentStorage = (*GCSDocumentStorage)(nil)

// NewGCSDocumentStorage creates a new GCSDocumentStorage using
// Application Default Credentials.
func NewGCSDocumentStorage(ctx context.Context, bucket string) (*GCSDocumentStorage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSDocumentStorage{client: client, bucket: bucket}, nil
}

// Close releases the underlying storage client.
func (s *GCSDocumentStorage) Close() error {
	return s.client.Close()
}

// Upload writes the image under objectPath and returns its public URL.
func (s *GCSDocumentStorage) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("object upload failed: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("object upload failed: %w", err)
	}
	return PublicURL(s.bucket, objectPath), nil
}

// PublicURL builds the public URL for an object, assuming public read
// access on the bucket.
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
