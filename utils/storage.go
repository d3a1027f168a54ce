package utils

import (
	"bytes"
	"context"
	"elimu/config"
	"fmt"
	"io"
	"log"
	"sync"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var (
	storageClient *storage.Client
	storageOnce   sync.Once
	storageErr    error
)

// getStorageClient returns the process-wide GCS client, constructing it once
func getStorageClient(ctx context.Context) (*storage.Client, error) {
	storageOnce.Do(func() {
		storageClient, storageErr = storage.NewClient(ctx, option.WithScopes(storage.ScopeReadWrite))
		if storageErr != nil {
			log.Printf("Error creating storage client: %v", storageErr)
		}
	})
	return storageClient, storageErr
}

// UploadToBucket writes data to the content bucket under key and returns the
// public URL
func UploadToBucket(ctx context.Context, key, contentType string, data []byte) (string, error) {
	client, err := getStorageClient(ctx)
	if err != nil {
		return "", fmt.Errorf("storage client: %w", err)
	}

	w := client.Bucket(config.AppConfig.GCSBucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload %s: %w", key, err)
	}

	return PublicURL(key), nil
}

// DeleteFromBucket removes an object from the content bucket
func DeleteFromBucket(ctx context.Context, key string) error {
	client, err := getStorageClient(ctx)
	if err != nil {
		return fmt.Errorf("storage client: %w", err)
	}
	return client.Bucket(config.AppConfig.GCSBucket).Object(key).Delete(ctx)
}

// PublicURL returns the public URL for an object in the content bucket
func PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", config.AppConfig.GCSBucket, key)
}
