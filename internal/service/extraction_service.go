package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pdf-chat-server/internal/domain"
)

// ExtractionService drives the extraction pipeline for one uploaded
// document: direct extraction first, per-page rasterization plus OCR as the
// fallback, then durable persistence and artifact cleanup.
//
// One run owns its document exclusively. Raster images are deleted as part
// of the page step that created them, so they never survive a failure on a
// later page. The uploaded file itself is deleted once the run terminates,
// on success and on failure alike.
type ExtractionService struct {
	extractor  domain.DirectExtractor
	rasterizer domain.PageRasterizer
	ocr        domain.OCREngine
	store      domain.ArtifactStore
	files      domain.FileHandler
	logger     domain.Logger
	language   string
}

// NewExtractionService creates the pipeline orchestrator.
func NewExtractionService(
	extractor domain.DirectExtractor,
	rasterizer domain.PageRasterizer,
	ocr domain.OCREngine,
	store domain.ArtifactStore,
	files domain.FileHandler,
	logger domain.Logger,
	language string,
) *ExtractionService {
	if language == "" {
		language = "eng"
	}
	return &ExtractionService{
		extractor:  extractor,
		rasterizer: rasterizer,
		ocr:        ocr,
		store:      store,
		files:      files,
		logger:     logger,
		language:   language,
	}
}

// ExtractAndStore runs the full pipeline and returns the artifact store key
// of the persisted text. A document with no recoverable text at all is a
// successful run with an empty aggregate, not an error.
func (s *ExtractionService) ExtractAndStore(
	ctx context.Context,
	userID string,
	upload domain.FileInfo,
) (*domain.ExtractionResult, error) {
	start := time.Now()
	state := domain.StateReceived

	advance := func(next domain.ExtractionState) {
		state = next
		s.logger.Debug("Extraction state transition", "doc_id", upload.ID, "state", next)
	}

	// The uploaded file must not survive the run. Failure paths are covered
	// here; the success path deletes it explicitly before CLEANED_UP.
	documentRemoved := false
	defer func() {
		if !documentRemoved {
			s.removeArtifact(upload.Path)
		}
	}()

	fail := func(err error) (*domain.ExtractionResult, error) {
		advance(domain.StateFailed)
		s.logger.Error("Extraction run failed", err, "doc_id", upload.ID, "state_before_failure", state)
		return nil, err
	}

	text, pageCount, err := s.extractor.Extract(ctx, upload.Path)
	advance(domain.StateDirectAttempted)
	if err != nil {
		return fail(err)
	}

	aggregate := text
	usedOCR := false

	if strings.TrimSpace(text) == "" {
		advance(domain.StateNeedsOCR)
		usedOCR = true
		s.logger.Info("No embedded text found, falling back to OCR",
			"doc_id", upload.ID, "page_count", pageCount)

		var sb strings.Builder
		for page := 1; page <= pageCount; page++ {
			if err := ctx.Err(); err != nil {
				return fail(err)
			}
			pageText, err := s.processPage(ctx, upload.Path, page, advance)
			if err != nil {
				return fail(err)
			}
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
		aggregate = sb.String()
		// A document with no recoverable text at all aggregates to the
		// empty string, not to a run of bare page separators.
		if strings.TrimSpace(aggregate) == "" {
			aggregate = ""
		}
	} else {
		advance(domain.StateTextFound)
	}

	advance(domain.StateAggregated)

	key := fmt.Sprintf("%s/%s.txt", userID, upload.ID)
	if err := s.store.Put(ctx, key, []byte(aggregate)); err != nil {
		var perr *domain.PersistenceError
		if !errors.As(err, &perr) {
			err = &domain.PersistenceError{Key: key, Cause: err}
		}
		return fail(err)
	}
	advance(domain.StatePersisted)

	s.removeArtifact(upload.Path)
	documentRemoved = true
	advance(domain.StateCleanedUp)

	s.logger.Info("Extraction run complete",
		"doc_id", upload.ID,
		"key", key,
		"page_count", pageCount,
		"used_ocr", usedOCR,
		"text_len", len(aggregate),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.ExtractionResult{
		DocumentID: upload.ID,
		Key:        key,
		Text:       aggregate,
		PageCount:  pageCount,
		UsedOCR:    usedOCR,
		State:      domain.StateCleanedUp,
		Duration:   time.Since(start),
	}, nil
}

// processPage runs raster-then-recognize for one page. Deletion of the
// raster image is tied to this step, not to the whole run: the deferred
// removal fires whether recognition succeeds or fails, so a failure on a
// later page can never leave this page's image behind.
func (s *ExtractionService) processPage(
	ctx context.Context,
	docPath string,
	page int,
	advance func(domain.ExtractionState),
) (string, error) {
	imagePath, err := s.rasterizer.Render(ctx, docPath, page)
	if err != nil {
		var rerr *domain.RasterizationError
		if !errors.As(err, &rerr) {
			err = &domain.RasterizationError{Page: page, Cause: err}
		}
		return "", err
	}
	advance(domain.StateRasterized)
	defer s.removeArtifact(imagePath)

	pageText, err := s.ocr.Recognize(ctx, imagePath, s.language)
	if err != nil {
		return "", &domain.OCRError{Page: page, Cause: err}
	}
	advance(domain.StateRecognized)

	return pageText, nil
}

// removeArtifact deletes a transient file best-effort. A cleanup failure is
// logged and never overrides the run's primary outcome.
func (s *ExtractionService) removeArtifact(path string) {
	if path == "" {
		return
	}
	if err := s.files.Remove(path); err != nil {
		cerr := &domain.CleanupError{Path: path, Cause: err}
		s.logger.Warn("Artifact cleanup failed", "path", path, "error", cerr)
	}
}
