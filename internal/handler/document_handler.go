// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"pdf-chat-server/internal/domain"
)

// DocumentHandler handles document upload and session reset.
type DocumentHandler struct {
	extraction  domain.ExtractionService
	files       domain.FileHandler
	sessions    domain.SessionStore
	logger      domain.Logger
	maxFileSize int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	extraction domain.ExtractionService,
	files domain.FileHandler,
	sessions domain.SessionStore,
	logger domain.Logger,
	maxFileSize int64,
) *DocumentHandler {
	return &DocumentHandler{
		extraction:  extraction,
		files:       files,
		sessions:    sessions,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// UploadResponse is returned once the document's text is durably stored.
type UploadResponse struct {
	DocumentKey string `json:"document_key"`
	PageCount   int    `json:"page_count"`
	UsedOCR     bool   `json:"used_ocr"`
}

// UploadDocument accepts one PDF, runs the extraction pipeline and binds
// the persisted text to the user's session. The session's conversation
// history is reset for the new document.
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." {
		originalName = "document.pdf"
	}

	if ext := strings.ToLower(filepath.Ext(originalName)); ext != ".pdf" {
		writeError(w, http.StatusBadRequest, "Unsupported file type. Only PDF (.pdf) is accepted.")
		return
	}

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	upload, err := h.files.SaveUpload(file, originalName)
	if err != nil {
		h.logger.Error("Failed to save upload", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	result, err := h.extraction.ExtractAndStore(r.Context(), user.ID, *upload)
	if err != nil {
		h.logger.Error("Extraction failed", err, "user_id", user.ID, "doc_id", upload.ID)
		appErr := mapExtractionError(err)
		writeError(w, appErr.StatusCode, appErr.Message)
		return
	}

	// Text is durable at this point; the session may now refer to it.
	h.sessions.SetDocument(user.ID, result.Key)

	writeJSON(w, http.StatusCreated, UploadResponse{
		DocumentKey: result.Key,
		PageCount:   result.PageCount,
		UsedOCR:     result.UsedOCR,
	})
}

// NewDocument clears the session's document key and conversation so the
// user can start over without uploading yet.
func (h *DocumentHandler) NewDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	h.sessions.Reset(user.ID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
