package chain

import (
	"context"
	"fmt"

	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/rs/zerolog/log"
)

// RAG composes a retriever and a generator into a Runner: retrieve
// passages for the question, then generate an answer grounded on them.
type RAG struct {
	retriever Retriever
	generator Generator
	model     string
	topK      int
}

// NewRAG creates a RAG runner. model may be empty to use the
// generator's default; topK bounds the number of retrieved passages.
func NewRAG(retriever Retriever, generator Generator, model string, topK int) *RAG {
	if topK < 1 {
		topK = 3
	}
	return &RAG{
		retriever: retriever,
		generator: generator,
		model:     model,
		topK:      topK,
	}
}

// Run executes one retrieval + generation cycle.
func (r *RAG) Run(ctx context.Context, question string, history []domain.Exchange) (*Result, error) {
	passages, err := r.retriever.Retrieve(ctx, question, r.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}

	model := r.model
	if model == "" {
		model = r.generator.DefaultModel()
	}

	resp, err := r.generator.Generate(ctx, GenRequest{
		Question: question,
		History:  history,
		Passages: passages,
	}, model)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	log.Debug().
		Str("model", resp.Model).
		Int("passages", len(passages)).
		Int("tokens_used", resp.TokensUsed).
		Int64("latency_ms", resp.LatencyMs).
		Msg("chain completed")

	sources := make([]Source, 0, len(passages))
	for _, p := range passages {
		sources = append(sources, Source{ID: p.SourceID, Title: p.Title})
	}

	return &Result{Answer: resp.Text, Sources: sources}, nil
}
