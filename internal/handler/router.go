package handler

import (
	"net/http"

	"file-converter/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"file-converter"}`))
	}).Methods("GET")

	// Generated sheets are served from the media directory
	router.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(container.Config.GetMediaPath()))))

	// Initialize handlers
	maxFileSize := container.Config.GetMaxFileSize()
	convertHandler := NewConvertHandler(container.ConversionService, maxFileSize, container.Logger)
	photoHandler := NewPhotoHandler(container.PhotoSheetService, maxFileSize, container.Logger)
	chatHandler := NewChatHandler(container.ChatService, container.Logger)

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(LoggingMiddleware(container.Logger))

	api.HandleFunc("/convert", convertHandler.Convert).Methods("POST")
	api.HandleFunc("/photo-sheet", photoHandler.BuildSheet).Methods("POST")

	api.HandleFunc("/chat", chatHandler.Send).Methods("POST")
	api.HandleFunc("/chat/history", chatHandler.History).Methods("GET")
	api.HandleFunc("/chat/{sessionId}/messages", chatHandler.Messages).Methods("GET")
	api.HandleFunc("/chat/{sessionId}", chatHandler.Delete).Methods("DELETE")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:4173",
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
