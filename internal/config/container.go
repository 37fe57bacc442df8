package config

import (
	"context"

	"pdf-chat-server/internal/domain"
	"pdf-chat-server/internal/repository"
	"pdf-chat-server/internal/service"
	"pdf-chat-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SupabaseClient    domain.SupabaseClient
	FileStore         domain.FileHandler
	ArtifactStore     domain.ArtifactStore
	ExtractionService domain.ExtractionService
	AnswerClient      domain.AnswerClient
	SessionStore      domain.SessionStore
	AuthService       domain.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Identity provider
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Warn("Supabase client not initialized; auth endpoints will fail", "error", err)
	}
	authService := service.NewAuthService(supabaseClient, appLogger)

	// Extraction pipeline
	fileStore := service.NewLocalFileStore(config.GetUploadPath(), appLogger)
	artifactStore := service.NewStorageService(
		config.GetSupabaseURL(),
		config.GetSupabaseServiceKey(),
		config.GetStorageBucket(),
	)
	extractor := service.NewFitzExtractor(appLogger)
	rasterizer := service.NewFitzRasterizer(config.GetRasterOptions(), appLogger)
	ocrEngine := service.NewTesseractEngine(appLogger)
	extractionService := service.NewExtractionService(
		extractor,
		rasterizer,
		ocrEngine,
		artifactStore,
		fileStore,
		appLogger,
		config.GetOCRLanguage(),
	)

	// Question answering
	var answerClient domain.AnswerClient
	switch config.GetAnswerProvider() {
	case "vertex":
		va, err := service.NewVertexAnswerer(context.Background(), config.GetGCPProjectID(), config.GetGCPLocation())
		if err != nil {
			appLogger.Warn("Vertex answerer not available; chat endpoints will fail", "error", err)
		} else {
			answerClient = va
		}
	default:
		answerClient = service.NewFunctionAnswerer(
			config.GetSupabaseURL(),
			config.GetSupabaseServiceKey(),
			config.GetAnswerFunction(),
		)
	}

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SupabaseClient:    supabaseClient,
		FileStore:         fileStore,
		ArtifactStore:     artifactStore,
		ExtractionService: extractionService,
		AnswerClient:      answerClient,
		SessionStore:      service.NewMemorySessionStore(),
		AuthService:       authService,
	}
}
