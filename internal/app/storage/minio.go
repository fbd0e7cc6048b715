package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"visaportal/internal/app/config"
)

// MinIOClient wraps the object store. The contracts bucket is written by
// the document pipeline; the identity/signature buckets are read-only.
type MinIOClient struct {
	client   *minio.Client
	endpoint string
	useSSL   bool
}

func NewMinIOClient(cfg config.MinioConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	m := &MinIOClient{
		client:   client,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}

	// Only the bucket we write to is created if missing.
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.ContractsBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.ContractsBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", cfg.ContractsBucket)
	}

	return m, nil
}

// UploadObject stores data under bucket/path, overwriting any existing
// object with the same name.
func (m *MinIOClient) UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := m.client.PutObject(ctx, bucket, path, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s/%s: %w", bucket, path, err)
	}

	logrus.Infof("Object %s/%s uploaded successfully (%d bytes)", bucket, path, len(data))
	return nil
}

// DownloadObject reads an object and reports its content type.
func (m *MinIOClient) DownloadObject(ctx context.Context, bucket, path string) ([]byte, string, error) {
	object, err := m.client.GetObject(ctx, bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object %s/%s: %w", bucket, path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read object %s/%s: %w", bucket, path, err)
	}

	stat, err := object.Stat()
	contentType := "application/octet-stream"
	if err == nil && stat.ContentType != "" {
		contentType = stat.ContentType
	}

	return data, contentType, nil
}

// PublicURL returns the direct (non-presigned) URL of an object. Buckets
// served by this deployment carry a public read policy.
func (m *MinIOClient) PublicURL(bucket, path string) string {
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, bucket, path)
}

// ObjectExists checks presence without downloading.
func (m *MinIOClient) ObjectExists(ctx context.Context, bucket, path string) (bool, error) {
	_, err := m.client.StatObject(ctx, bucket, path, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object: %w", err)
	}

	return true, nil
}
