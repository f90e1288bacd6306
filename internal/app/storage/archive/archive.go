// Package archive uploads recorded audio to an S3-compatible bucket.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"voice-notes/internal/app/codec"
	"voice-notes/internal/config"
)

// KeyPrefix is prepended to every object key.
const KeyPrefix = "translations/"

// AudioArchive stores audio payloads under a key.
type AudioArchive interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (string, error)
	URL(key string) string
	Delete(ctx context.Context, key string) error
}

// ObjectKey returns the key a record's audio is archived under.
func ObjectKey(id int64, mimeType string) string {
	return KeyPrefix + strconv.FormatInt(id, 10) + codec.ExtensionForMimeType(mimeType)
}

// MinioArchive implements AudioArchive using MinIO
type MinioArchive struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioArchive connects to cfg.Endpoint and makes sure the bucket exists.
func NewMinioArchive(ctx context.Context, cfg config.ArchiveConfig) (*MinioArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	a := &MinioArchive{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}

	exists, err := client.BucketExists(ctx, a.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return a, nil
}

// Put uploads data under key and returns its URL.
func (a *MinioArchive) Put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimeType,
		UserMetadata: map[string]string{
			"archived-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to MinIO: %w", key, err)
	}
	return a.URL(key), nil
}

// PresignedURL returns a time-limited download link for key.
func (a *MinioArchive) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}

// URL returns the plain object URL for key.
func (a *MinioArchive) URL(key string) string {
	protocol := "http"
	if a.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, a.endpoint, a.bucket, key)
}

// Delete removes key from the bucket.
func (a *MinioArchive) Delete(ctx context.Context, key string) error {
	err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// MemoryArchive keeps objects in process memory.
type MemoryArchive struct {
	mu      sync.Mutex
	objects map[string]Object
}

// Object is one stored payload.
type Object struct {
	Data     []byte
	MimeType string
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{objects: make(map[string]Object)}
}

func (m *MemoryArchive) Put(_ context.Context, key string, data []byte, mimeType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = Object{Data: append([]byte(nil), data...), MimeType: mimeType}
	return m.URL(key), nil
}

func (m *MemoryArchive) URL(key string) string {
	return "memory://" + key
}

func (m *MemoryArchive) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Get returns the object stored under key.
func (m *MemoryArchive) Get(key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key]
	return o, ok
}

// Len returns the number of stored objects.
func (m *MemoryArchive) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
