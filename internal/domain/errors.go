package domain

import "fmt"

// MalformedDocumentError means the document could not be parsed at all, or
// its page count could not be determined. Fatal, never retried.
type MalformedDocumentError struct {
	Path  string
	Cause error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document %s: %v", e.Path, e.Cause)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Cause }

// RasterizationError means a specific page could not be rendered.
// Fatal to the run; carries the failing page for diagnostics.
type RasterizationError struct {
	Page  int
	Cause error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("rasterization failed on page %d: %v", e.Page, e.Cause)
}

func (e *RasterizationError) Unwrap() error { return e.Cause }

// OCRError means the recognition engine failed on a page. Fatal to the run.
type OCRError struct {
	Page  int
	Cause error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr failed on page %d: %v", e.Page, e.Cause)
}

func (e *OCRError) Unwrap() error { return e.Cause }

// PersistenceError means the artifact store write failed. The pipeline must
// not report success when this occurs.
type PersistenceError struct {
	Key   string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist extracted text under %s: %v", e.Key, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }

// CleanupError means best-effort artifact deletion failed. It is logged but
// never overrides the run's primary outcome.
type CleanupError struct {
	Path  string
	Cause error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("failed to delete artifact %s: %v", e.Path, e.Cause)
}

func (e *CleanupError) Unwrap() error { return e.Cause }
