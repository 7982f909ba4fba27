package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader transfers an uploaded image to the hosting bucket and returns
// its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

type bucketUploader struct {
	client *gcs.Client
	bucket string
}

func NewUploader(client *gcs.Client, bucket string) Uploader {
	return &bucketUploader{client: client, bucket: bucket}
}

func (u *bucketUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("image is empty")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	token := uuid.NewString()
	objectPath := fmt.Sprintf("items/%s%s", uuid.NewString(), extensionFor(contentType))

	obj := u.client.Bucket(u.bucket).Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object writer: %w", err)
	}

	publicURL := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		u.bucket, url.PathEscape(objectPath), token)
	return publicURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
