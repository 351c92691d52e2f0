package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// MinioStore implements ImageStore on top of an S3 compatible MinIO bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	folder    string
	publicURL string
}

// NewMinioStore creates a new instance of ImageStore using a MinIO client.
// publicURL is the externally reachable base address of the object storage.
func NewMinioStore(client *minio.Client, bucket, folder, publicURL string) *MinioStore {
	return &MinioStore{
		client:    client,
		bucket:    bucket,
		folder:    strings.Trim(folder, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload puts the image into the bucket under a unique key and returns its public URL.
// The key doubles as the image handle.
func (m *MinioStore) Upload(ctx context.Context, data []byte, fileName string) (Image, error) {
	if len(data) == 0 {
		return Image{}, errors.New("image payload is empty")
	}

	mtype := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = mtype.Extension()
	}
	key := path.Join(m.folder, "product_"+uuid.NewString()+ext)

	info, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  mtype.String(),
		UserMetadata: map[string]string{"original-name": filepath.Base(fileName)},
	})
	if err != nil {
		return Image{}, fmt.Errorf("failed to upload image %q: %w", fileName, err)
	}

	return Image{
		URL: m.objectURL(info.Key),
		ID:  info.Key,
	}, nil
}

// Delete removes the object stored under id.
func (m *MinioStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("image id is required")
	}
	if err := m.client.RemoveObject(ctx, m.bucket, id, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete image %q: %w", id, err)
	}
	return nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", m.bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", m.bucket, err)
	}
	return nil
}

// Ping checks that the storage answers and the bucket is reachable.
func (m *MinioStore) Ping(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return fmt.Errorf("image storage is unreachable: %w", err)
	}
	return nil
}

func (m *MinioStore) objectURL(key string) string {
	return m.publicURL + "/" + m.bucket + "/" + key
}
