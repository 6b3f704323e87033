// Package chain defines the retrieval-augmented generation capability
// the chat service consumes: a question plus conversational history in,
// an answer plus supporting sources out.
package chain

import (
	"context"

	"github.com/Anish6964/RAG-Chatbot/internal/domain"
)

// Source identifies a document that supported an answer.
type Source struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Result is the outcome of one chain invocation. Sources may contain
// duplicates; callers deduplicate for display.
type Result struct {
	Answer  string
	Sources []Source
}

// Runner runs the full question -> answer chain.
type Runner interface {
	Run(ctx context.Context, question string, history []domain.Exchange) (*Result, error)
}

// Passage is a retrieved document excerpt used as grounding context.
type Passage struct {
	SourceID string
	Title    string
	Excerpt  string
}

// Retriever fetches passages relevant to a query from the search index.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]Passage, error)
}

// GenRequest contains answer-generation parameters.
type GenRequest struct {
	Question string
	History  []domain.Exchange
	Passages []Passage
}

// GenResponse contains the generation result.
type GenResponse struct {
	Text       string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Generator defines the interface for LLM providers.
type Generator interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Generate produces an answer grounded on the request's passages
	Generate(ctx context.Context, req GenRequest, model string) (*GenResponse, error)
}
