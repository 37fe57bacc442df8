package service

import (
	"bytes"
	"context"
	"fmt"

	"pdf-chat-server/internal/domain"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStorage stores extracted text in a Supabase Storage bucket,
// keyed by {user}/{document}.txt. It implements domain.ArtifactStore.
type SupabaseStorage struct {
	baseURL       string
	apiKey        string
	bucket        string
	storageClient *storage_go.Client
}

// NewStorageService creates an artifact store backed by Supabase Storage.
func NewStorageService(baseURL, apiKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:       baseURL,
		apiKey:        apiKey,
		bucket:        bucket,
		storageClient: storage_go.NewClient(baseURL+"/storage/v1", apiKey, nil),
	}
}

// Put writes the full text blob under key. Writes are upserts so re-running
// extraction for the same document rewrites the same object.
func (s *SupabaseStorage) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contentType := "text/plain; charset=utf-8"
	upsert := true
	_, err := s.storageClient.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return &domain.PersistenceError{Key: key, Cause: err}
	}
	return nil
}

// Get reads the full text blob stored under key.
func (s *SupabaseStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.storageClient.DownloadFile(s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", key, err)
	}
	return data, nil
}
