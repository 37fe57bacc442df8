package service

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"pdf-chat-server/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzRasterizer renders single PDF pages into image files for OCR.
// Each Render call is independent: it opens the document, renders exactly
// one page and writes exactly one artifact, which the caller owns.
type FitzRasterizer struct {
	opts   domain.RasterOptions
	logger domain.Logger
}

// NewFitzRasterizer creates a rasterizer with the given render options.
func NewFitzRasterizer(opts domain.RasterOptions, logger domain.Logger) *FitzRasterizer {
	if opts.DPI <= 0 {
		opts.DPI = 200
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	return &FitzRasterizer{opts: opts, logger: logger}
}

// Render rasterizes the 1-based page of the document at docPath and writes
// it next to the document as <stem>_page<N>.<format>. Returns the artifact
// path. Pages that are out of range or fail to render produce a
// RasterizationError.
func (r *FitzRasterizer) Render(ctx context.Context, docPath string, page int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := fitz.New(docPath)
	if err != nil {
		return "", &domain.RasterizationError{Page: page, Cause: err}
	}
	defer doc.Close()

	if page < 1 || page > doc.NumPage() {
		return "", &domain.RasterizationError{
			Page:  page,
			Cause: fmt.Errorf("page out of range 1..%d", doc.NumPage()),
		}
	}

	img, err := doc.ImageDPI(page-1, r.opts.DPI)
	if err != nil {
		return "", &domain.RasterizationError{Page: page, Cause: err}
	}

	// Re-render at a reduced DPI when the page exceeds the configured
	// bounds, so OCR input stays a predictable size.
	if r.opts.Width > 0 && r.opts.Height > 0 {
		b := img.Bounds()
		if b.Dx() > r.opts.Width || b.Dy() > r.opts.Height {
			scale := float64(r.opts.Width) / float64(b.Dx())
			if h := float64(r.opts.Height) / float64(b.Dy()); h < scale {
				scale = h
			}
			img, err = doc.ImageDPI(page-1, r.opts.DPI*scale)
			if err != nil {
				return "", &domain.RasterizationError{Page: page, Cause: err}
			}
		}
	}

	stem := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	imagePath := filepath.Join(filepath.Dir(docPath), fmt.Sprintf("%s_page%d.%s", stem, page, r.opts.Format))

	if err := r.writeImage(imagePath, img); err != nil {
		return "", &domain.RasterizationError{Page: page, Cause: err}
	}

	r.logger.Debug("Rendered page", "page", page, "image", imagePath, "dpi", r.opts.DPI)
	return imagePath, nil
}

func (r *FitzRasterizer) writeImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	switch r.opts.Format {
	case "jpeg", "jpg":
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(out, img)
	}

	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Do not leave a partial artifact behind.
		_ = os.Remove(path)
	}
	return err
}
