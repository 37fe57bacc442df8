package config

import (
	"os"
	"strconv"

	"pdf-chat-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	UploadPath         string
	MaxFileSize        int64
	LogLevel           string
	SupabaseURL        string
	SupabaseKey        string
	SupabaseServiceKey string
	StorageBucket      string
	AnswerProvider     string
	AnswerFunction     string
	GCPProjectID       string
	GCPLocation        string
	OCRLanguage        string
	Raster             domain.RasterOptions
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:         getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		SupabaseURL:        getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:        getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		SupabaseServiceKey: getEnvOrDefault("SUPABASE_SERVICE_KEY", ""),
		StorageBucket:      getEnvOrDefault("STORAGE_BUCKET", "pdf-texts"),
		AnswerProvider:     getEnvOrDefault("ANSWER_PROVIDER", "function"),
		AnswerFunction:     getEnvOrDefault("ANSWER_FUNCTION", "answer-question"),
		GCPProjectID:       getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:        getEnvOrDefault("GCP_LOCATION", "us-central1"),
		OCRLanguage:        getEnvOrDefault("OCR_LANGUAGE", "eng"),
		Raster: domain.RasterOptions{
			DPI:    getEnvFloatOrDefault("OCR_IMAGE_DPI", 200),
			Width:  getEnvIntOrDefault("OCR_IMAGE_WIDTH", 1200),
			Height: getEnvIntOrDefault("OCR_IMAGE_HEIGHT", 1600),
			Format: getEnvOrDefault("OCR_IMAGE_FORMAT", "png"),
		},
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the transient upload directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSupabaseServiceKey returns the service role key used for server-side
// storage and function calls.
func (c *AppConfig) GetSupabaseServiceKey() string {
	return c.SupabaseServiceKey
}

// GetStorageBucket returns the artifact store bucket name
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetAnswerProvider returns which answer backend to use ("function" or "vertex")
func (c *AppConfig) GetAnswerProvider() string {
	return c.AnswerProvider
}

// GetAnswerFunction returns the name of the remote answer function
func (c *AppConfig) GetAnswerFunction() string {
	return c.AnswerFunction
}

// GetGCPProjectID returns the Google Cloud project for the Vertex backend
func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

// GetGCPLocation returns the Google Cloud region for the Vertex backend
func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

// GetOCRLanguage returns the Tesseract language code
func (c *AppConfig) GetOCRLanguage() string {
	return c.OCRLanguage
}

// GetRasterOptions returns the page rasterization settings
func (c *AppConfig) GetRasterOptions() domain.RasterOptions {
	return c.Raster
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
