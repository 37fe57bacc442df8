package service

import (
	"context"
	"errors"
	"strings"

	"pdf-chat-server/internal/domain"

	"github.com/gen2brain/go-fitz"
)

var errPageCount = errors.New("page count could not be determined")

// FitzExtractor pulls embedded text out of a PDF with MuPDF, without
// rendering any pixels. It implements domain.DirectExtractor.
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new direct text extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{logger: logger}
}

// Extract returns the embedded text and page count of the document at path.
// An image-only document yields empty (or whitespace-only) text with a
// correct page count and no error; a document that cannot be opened, or
// whose page count cannot be determined, is malformed.
func (e *FitzExtractor) Extract(ctx context.Context, path string) (string, int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", 0, &domain.MalformedDocumentError{Path: path, Cause: err}
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount < 1 {
		return "", 0, &domain.MalformedDocumentError{Path: path, Cause: errPageCount}
	}

	var sb strings.Builder
	for i := 0; i < pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", pageCount, err
		}
		text, err := doc.Text(i)
		if err != nil {
			// A page that fails text extraction is not fatal here: the
			// document parsed, so the OCR fallback can still recover it.
			e.logger.Warn("Failed to extract embedded text from page", "page", i+1, "total", pageCount, "error", err)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), pageCount, nil
}
