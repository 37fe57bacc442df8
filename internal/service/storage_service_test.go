package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pdf-chat-server/internal/domain"
)

func TestNewStorageService(t *testing.T) {
	store := NewStorageService("https://project.supabase.co", "test-key", "pdf-texts")

	if store.bucket != "pdf-texts" {
		t.Errorf("Expected bucket 'pdf-texts', got %s", store.bucket)
	}
	if store.storageClient == nil {
		t.Error("Expected storage client to be initialized")
	}
}

func TestSupabaseStorage_PutFailureIsPersistenceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"bucket unavailable"}`))
	}))
	defer server.Close()

	store := NewStorageService(server.URL, "test-key", "pdf-texts")

	err := store.Put(context.Background(), "user-1/doc-1.txt", []byte("text"))
	if err == nil {
		t.Fatal("Expected error when the storage backend rejects the write")
	}
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected PersistenceError, got %T: %v", err, err)
	}
	if perr.Key != "user-1/doc-1.txt" {
		t.Errorf("Expected failing key in error, got %s", perr.Key)
	}
}

func TestSupabaseStorage_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stored document text"))
	}))
	defer server.Close()

	store := NewStorageService(server.URL, "test-key", "pdf-texts")

	data, err := store.Get(context.Background(), "user-1/doc-1.txt")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != "stored document text" {
		t.Errorf("Expected stored text, got %q", string(data))
	}
}

func TestSupabaseStorage_CancelledContext(t *testing.T) {
	store := NewStorageService("https://project.supabase.co", "test-key", "pdf-texts")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Put(ctx, "user-1/doc-1.txt", []byte("text")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from Put, got %v", err)
	}
	if _, err := store.Get(ctx, "user-1/doc-1.txt"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled from Get, got %v", err)
	}
}
