package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anish6964/RAG-Chatbot/internal/api"
	"github.com/Anish6964/RAG-Chatbot/internal/chain"
	"github.com/Anish6964/RAG-Chatbot/internal/chain/gemini"
	"github.com/Anish6964/RAG-Chatbot/internal/chain/ollama"
	"github.com/Anish6964/RAG-Chatbot/internal/chain/openai"
	"github.com/Anish6964/RAG-Chatbot/internal/config"
	"github.com/Anish6964/RAG-Chatbot/internal/repository/redis"
	"github.com/Anish6964/RAG-Chatbot/internal/search/kendra"
	"github.com/Anish6964/RAG-Chatbot/internal/service"
	"github.com/Anish6964/RAG-Chatbot/internal/session"
	"github.com/Anish6964/RAG-Chatbot/internal/storage/s3"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Chat.Provider).
		Int("max_history_length", cfg.Chat.MaxHistoryLength).
		Msg("Starting RAG chatbot server")

	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}

	kendraClient := kendra.NewClient(awsCfg, cfg.Search.IndexID, cfg.Search.DataSourceID)
	s3Client := s3.NewClient(awsCfg, cfg.Storage.Bucket)

	runner, err := buildRunner(cfg, kendraClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build generation chain")
	}

	store := session.NewStore(cfg.Chat.MaxHistoryLength)
	chatService := service.NewChatService(store, runner)
	ingestService := service.NewIngestService(s3Client, kendraClient)

	// Redis is optional; without it chat submissions are not rate limited.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
	} else {
		log.Warn().Msg("Redis not configured, rate limiting disabled")
	}

	router := api.NewRouter(cfg, chatService, ingestService, redisClient)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// buildRunner registers the configured generator providers and composes
// the retrieval + generation chain around the active one.
func buildRunner(cfg *config.Config, retriever chain.Retriever) (chain.Runner, error) {
	registry := chain.NewRegistry(cfg.Chat.Provider)

	if cfg.LLM.Gemini.APIKey != "" {
		registry.Register(gemini.NewProvider(cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model))
	}
	if cfg.LLM.Ollama.Host != "" {
		registry.Register(ollama.NewProvider(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.DefaultModel))
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		registry.Register(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	}

	log.Info().Strs("providers", registry.List()).Str("default", registry.DefaultProvider()).Msg("LLM providers registered")

	generator, err := registry.Get("")
	if err != nil {
		return nil, err
	}

	return chain.NewRAG(retriever, generator, cfg.Chat.Model, cfg.Chat.TopK), nil
}
