package handler

import (
	"net/http"

	"github.com/Anish6964/RAG-Chatbot/internal/api/response"
	"github.com/Anish6964/RAG-Chatbot/internal/config"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ListProviders returns the configured LLM providers
func ListProviders(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providers := []map[string]any{}

		if cfg.LLM.Gemini.APIKey != "" {
			providers = append(providers, map[string]any{
				"name":    "gemini",
				"default": cfg.Chat.Provider == "gemini",
			})
		}

		if cfg.LLM.Ollama.Host != "" {
			providers = append(providers, map[string]any{
				"name":    "ollama",
				"default": cfg.Chat.Provider == "ollama",
				"host":    cfg.LLM.Ollama.Host,
			})
		}

		if cfg.LLM.OpenAI.APIKey != "" {
			providers = append(providers, map[string]any{
				"name":    "openai",
				"default": cfg.Chat.Provider == "openai",
			})
		}

		response.OK(w, providers)
	}
}
