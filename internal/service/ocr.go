package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-chat-server/internal/domain"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes text in raster images via Tesseract.
// Recognition is CPU-bound and blocking; callers run it one page at a time.
type TesseractEngine struct {
	logger domain.Logger
}

// NewTesseractEngine creates a new OCR engine adapter
func NewTesseractEngine(logger domain.Logger) *TesseractEngine {
	return &TesseractEngine{logger: logger}
}

// Recognize runs OCR over the image at imagePath using the given Tesseract
// language code. A blank page yields an empty string with no error.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("failed to set OCR language %q: %w", language, err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to load OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text), nil
}
