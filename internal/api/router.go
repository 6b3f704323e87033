package api

import (
	"net/http"

	"github.com/Anish6964/RAG-Chatbot/internal/api/handler"
	customMiddleware "github.com/Anish6964/RAG-Chatbot/internal/api/middleware"
	"github.com/Anish6964/RAG-Chatbot/internal/config"
	"github.com/Anish6964/RAG-Chatbot/internal/repository/redis"
	"github.com/Anish6964/RAG-Chatbot/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router. redisClient may be
// nil; rate limiting is skipped in that case.
func NewRouter(
	cfg *config.Config,
	chatService *service.ChatService,
	ingestService *service.IngestService,
	redisClient *redis.Client,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", customMiddleware.SessionHeader},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	chatHandler := handler.NewChatHandler(chatService)
	ingestHandler := handler.NewIngestHandler(ingestService, cfg.Storage.UploadDir)

	var rateLimitMiddleware *customMiddleware.RateLimitMiddleware
	if redisClient != nil {
		rateLimiter := redis.NewRateLimiter(
			redisClient,
			cfg.Chat.RateLimit.RequestsPerMinute,
			cfg.Chat.RateLimit.Burst,
		)
		rateLimitMiddleware = customMiddleware.NewRateLimitMiddleware(rateLimiter)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/providers", handler.ListProviders(cfg))
		r.Post("/sessions", chatHandler.CreateSession)
		r.Post("/documents", ingestHandler.Upload)

		// Chat routes require a session
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.SessionContext)
			if rateLimitMiddleware != nil {
				r.Use(rateLimitMiddleware.Limit)
			}

			r.Route("/chat", func(r chi.Router) {
				r.Post("/", chatHandler.Submit)
				r.Get("/history", chatHandler.History)
				r.Post("/clear", chatHandler.Clear)
				r.Put("/input", chatHandler.SetInput)
			})
		})
	})

	return r
}
