package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-chat-server/internal/domain"
	apperrors "pdf-chat-server/pkg/errors"
)

type contextKey string

const (
	userContextKey  contextKey = "user"
	tokenContextKey contextKey = "token"
)

// GetUserFromContext extracts the authenticated user from request context
func GetUserFromContext(r *http.Request) (*domain.SupabaseUser, bool) {
	user, ok := r.Context().Value(userContextKey).(*domain.SupabaseUser)
	return user, ok
}

// GetTokenFromContext extracts the authentication token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// mapExtractionError converts pipeline errors into AppErrors with short,
// user-safe messages. Internal detail stays in the logs.
func mapExtractionError(err error) *apperrors.AppError {
	var malformed *domain.MalformedDocumentError
	if errors.As(err, &malformed) {
		return apperrors.NewMalformedDocumentError("The document could not be parsed", err)
	}

	var raster *domain.RasterizationError
	if errors.As(err, &raster) {
		return apperrors.NewExtractionError("A page of the document could not be processed", err)
	}

	var ocr *domain.OCRError
	if errors.As(err, &ocr) {
		return apperrors.NewExtractionError("Text recognition failed for the document", err)
	}

	var persistence *domain.PersistenceError
	if errors.As(err, &persistence) {
		return apperrors.NewPersistenceError("The extracted text could not be stored", err)
	}

	return apperrors.NewInternalError("Error processing document", err)
}
