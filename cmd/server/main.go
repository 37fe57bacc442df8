package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-chat-server/internal/config"
	"pdf-chat-server/internal/handler"

	"github.com/joho/godotenv"
)

const staleUploadAge = 24 * time.Hour

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	// Anything left in the upload dir is an artifact of a crashed run.
	if removed, err := container.FileStore.SweepStale(context.Background(), staleUploadAge); err != nil {
		container.Logger.Warn("Stale upload sweep failed", "error", err)
	} else if removed > 0 {
		container.Logger.Info("Swept stale uploads", "removed", removed)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(
		container.AuthService,
		container.Logger,
	)

	documentHandler := handler.NewDocumentHandler(
		container.ExtractionService,
		container.FileStore,
		container.SessionStore,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)

	chatHandler := handler.NewChatHandler(
		container.ArtifactStore,
		container.AnswerClient,
		container.SessionStore,
		container.Logger,
	)

	authMiddleware := handler.NewAuthMiddleware(
		container.AuthService,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		authHandler,
		documentHandler,
		chatHandler,
		authMiddleware.Middleware,
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)

	container.Logger.Info("Server exited")
}
