package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"pdf-chat-server/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// max concurrent deletions during a stale-upload sweep
const sweepWorkers = 4

// LocalFileStore owns the transient upload directory. Uploaded documents
// and raster images live here until their extraction run deletes them.
type LocalFileStore struct {
	uploadPath string
	logger     domain.Logger
}

// NewLocalFileStore creates the upload directory if needed.
func NewLocalFileStore(uploadPath string, logger domain.Logger) *LocalFileStore {
	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		logger.Warn("Failed to create upload directory", "path", uploadPath, "error", err)
	}
	return &LocalFileStore{uploadPath: uploadPath, logger: logger}
}

// SaveUpload copies an uploaded file into transient storage under a fresh
// document ID and returns its handle.
func (s *LocalFileStore) SaveUpload(file multipart.File, originalName string) (*domain.FileInfo, error) {
	id := uuid.New().String()
	path := filepath.Join(s.uploadPath, id+".pdf")

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	size, err := io.Copy(out, file)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	return &domain.FileInfo{
		ID:           id,
		OriginalName: originalName,
		Path:         path,
		Size:         size,
	}, nil
}

// Remove deletes one transient file. A file that is already gone is not an
// error: cleanup must be idempotent.
func (s *LocalFileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SweepStale deletes files in the upload directory older than maxAge.
// Anything left behind here is a crashed or abandoned run's artifact.
func (s *LocalFileStore) SweepStale(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.uploadPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	var removed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, sweepWorkers)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entry := entry
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return ctx.Err()
			}

			info, err := entry.Info()
			if err != nil {
				return nil // already gone
			}
			if info.ModTime().After(cutoff) {
				return nil
			}

			path := filepath.Join(s.uploadPath, entry.Name())
			if err := s.Remove(path); err != nil {
				s.logger.Warn("Failed to sweep stale upload", "path", path, "error", err)
				return nil
			}
			removed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(removed.Load()), err
	}
	return int(removed.Load()), nil
}
