package config

import "testing"

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("ANSWER_PROVIDER", "")
	t.Setenv("OCR_LANGUAGE", "")
	t.Setenv("OCR_IMAGE_DPI", "")
	t.Setenv("OCR_IMAGE_FORMAT", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetStorageBucket() != "pdf-texts" {
		t.Fatalf("expected default bucket pdf-texts, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetAnswerProvider() != "function" {
		t.Fatalf("expected default answer provider function, got %s", cfg.GetAnswerProvider())
	}
	if cfg.GetOCRLanguage() != "eng" {
		t.Fatalf("expected default ocr language eng, got %s", cfg.GetOCRLanguage())
	}
	raster := cfg.GetRasterOptions()
	if raster.DPI != 200 {
		t.Fatalf("expected default raster dpi 200, got %v", raster.DPI)
	}
	if raster.Width != 1200 || raster.Height != 1600 {
		t.Fatalf("expected default raster bounds 1200x1600, got %dx%d", raster.Width, raster.Height)
	}
	if raster.Format != "png" {
		t.Fatalf("expected default raster format png, got %s", raster.Format)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("STORAGE_BUCKET", "extracted")
	t.Setenv("ANSWER_PROVIDER", "vertex")
	t.Setenv("OCR_LANGUAGE", "eng+fra")
	t.Setenv("OCR_IMAGE_DPI", "300")
	t.Setenv("OCR_IMAGE_FORMAT", "jpeg")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetStorageBucket() != "extracted" {
		t.Fatalf("expected bucket extracted, got %s", cfg.GetStorageBucket())
	}
	if cfg.GetAnswerProvider() != "vertex" {
		t.Fatalf("expected answer provider vertex, got %s", cfg.GetAnswerProvider())
	}
	if cfg.GetOCRLanguage() != "eng+fra" {
		t.Fatalf("expected ocr language eng+fra, got %s", cfg.GetOCRLanguage())
	}
	if cfg.GetRasterOptions().DPI != 300 {
		t.Fatalf("expected raster dpi 300, got %v", cfg.GetRasterOptions().DPI)
	}
	if cfg.GetRasterOptions().Format != "jpeg" {
		t.Fatalf("expected raster format jpeg, got %s", cfg.GetRasterOptions().Format)
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("OCR_IMAGE_DPI", "not-a-number")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetRasterOptions().DPI != 200 {
		t.Fatalf("expected default raster dpi 200, got %v", cfg.GetRasterOptions().DPI)
	}
}
