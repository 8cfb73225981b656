package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sentivora/mlr-automation/internal/core/port"
)

// Minio stores decks as objects in a single bucket.
type Minio struct {
	client *minio.Client
	bucket string
}

// NewMinio connects to the object store and ensures the bucket exists.
func NewMinio(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}
	return &Minio{client: client, bucket: bucket}, nil
}

func (m *Minio) Save(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object %s: %w", name, err)
	}
	return nil
}

func (m *Minio) Fetch(ctx context.Context, name string) ([]byte, string, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("get object %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil, "", port.ErrBlobNotFound
		}
		return nil, "", fmt.Errorf("read object %s: %w", name, err)
	}

	stat, err := obj.Stat()
	if err != nil {
		return data, "application/octet-stream", nil
	}
	return data, stat.ContentType, nil
}
