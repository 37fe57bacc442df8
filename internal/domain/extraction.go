package domain

import (
	"context"
	"mime/multipart"
	"time"
)

// ExtractionState tracks where a pipeline run is in its lifecycle.
// Transitions are strictly forward except FAILED, which is reachable
// from any state.
type ExtractionState string

const (
	StateReceived        ExtractionState = "RECEIVED"
	StateDirectAttempted ExtractionState = "DIRECT_ATTEMPTED"
	StateTextFound       ExtractionState = "TEXT_FOUND"
	StateNeedsOCR        ExtractionState = "NEEDS_OCR"
	StateRasterized      ExtractionState = "RASTERIZED"
	StateRecognized      ExtractionState = "RECOGNIZED"
	StateAggregated      ExtractionState = "AGGREGATED"
	StatePersisted       ExtractionState = "PERSISTED"
	StateCleanedUp       ExtractionState = "CLEANED_UP"
	StateFailed          ExtractionState = "FAILED"
)

// RasterOptions controls how document pages are rendered for OCR.
// Width and Height bound the rendered image; DPI drives the MuPDF scale.
type RasterOptions struct {
	DPI    float64
	Width  int
	Height int
	Format string // "png" or "jpeg"
}

// FileInfo describes an uploaded document held in transient local storage.
type FileInfo struct {
	ID           string
	OriginalName string
	Path         string
	Size         int64
}

// ExtractionResult is the terminal value of one orchestration run.
type ExtractionResult struct {
	DocumentID string
	Key        string
	Text       string
	PageCount  int
	UsedOCR    bool
	State      ExtractionState
	Duration   time.Duration
}

// DirectExtractor pulls embedded text and the page count out of a document
// without rendering pixels. Image-only documents yield empty text with a
// correct page count and no error.
type DirectExtractor interface {
	Extract(ctx context.Context, path string) (text string, pageCount int, err error)
}

// PageRasterizer renders one 1-based page of a document into an image file
// and returns its path. The caller owns the file.
type PageRasterizer interface {
	Render(ctx context.Context, docPath string, page int) (imagePath string, err error)
}

// OCREngine recognizes plain text in a raster image. Blank pages return ""
// with no error.
type OCREngine interface {
	Recognize(ctx context.Context, imagePath string, language string) (string, error)
}

// ArtifactStore is durable storage for extracted text, keyed by
// {user}/{document}.txt. Puts to distinct keys must not require
// coordination between callers.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// ExtractionService runs the whole pipeline for one uploaded document:
// direct extraction, OCR fallback, persistence and artifact cleanup.
type ExtractionService interface {
	ExtractAndStore(ctx context.Context, userID string, upload FileInfo) (*ExtractionResult, error)
}

// FileHandler owns the transient upload directory.
type FileHandler interface {
	SaveUpload(file multipart.File, originalName string) (*FileInfo, error)
	Remove(path string) error
	SweepStale(ctx context.Context, maxAge time.Duration) (int, error)
}
