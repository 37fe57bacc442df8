package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	authHandler *AuthHandler,
	documentHandler *DocumentHandler,
	chatHandler *ChatHandler,
	authMiddleware mux.MiddlewareFunc,
) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-chat-server"}`))
	}).Methods("GET")

	// Public auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes (require authentication)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/auth/profile", authHandler.GetProfile).Methods("GET")

	protected.HandleFunc("/documents", documentHandler.UploadDocument).Methods("POST")
	protected.HandleFunc("/documents/new", documentHandler.NewDocument).Methods("POST")

	protected.HandleFunc("/chat", chatHandler.Ask).Methods("POST")
	protected.HandleFunc("/chat", chatHandler.GetConversation).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler(router)
}
