package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Anish6964/RAG-Chatbot/internal/chain"
	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/Anish6964/RAG-Chatbot/internal/session"
	"github.com/rs/zerolog/log"
)

// ChatService coordinates one question -> answer cycle: read the
// history window, invoke the chain, record the result.
type ChatService struct {
	store  *session.Store
	runner chain.Runner
}

// NewChatService creates a new chat service.
func NewChatService(store *session.Store, runner chain.Runner) *ChatService {
	return &ChatService{
		store:  store,
		runner: runner,
	}
}

// CreateSession returns the session with the given ID, creating it if
// needed. An empty ID mints a fresh one.
func (s *ChatService) CreateSession(id string) domain.SessionInfo {
	return s.store.Create(id).Info()
}

// Submit processes one submitted question. Blank submissions are a
// no-op. If the chain invocation fails, neither the history window nor
// the turn list is touched; the session stays usable.
func (s *ChatService) Submit(ctx context.Context, sessionID, question string) (*domain.Turn, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.runner.Run(ctx, question, sess.Context())
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("chain invocation failed")
		return nil, fmt.Errorf("chain invocation failed: %w", err)
	}

	sources := dedupeSources(result.Sources)

	sess.RememberExchange(question, result.Answer)
	turn := sess.AppendTurn(question, result.Answer, sources)
	sess.ClearPendingInput()

	log.Info().
		Str("session_id", sessionID).
		Int("turn_id", turn.ID).
		Int("sources", len(sources)).
		Msg("turn recorded")

	return &turn, nil
}

// History returns the session's display log, oldest first.
func (s *ChatService) History(sessionID string) ([]domain.Turn, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Turns(), nil
}

// Clear resets the session: turns, history window and pending input are
// emptied; the session ID is preserved.
func (s *ChatService) Clear(sessionID string) error {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return err
	}
	sess.Reset()
	return nil
}

// SetPendingInput stashes the presentation layer's draft input.
func (s *ChatService) SetPendingInput(sessionID, input string) error {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return err
	}
	sess.SetPendingInput(input)
	return nil
}

// PendingInput returns the session's current draft input.
func (s *ChatService) PendingInput(sessionID string) (string, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return "", err
	}
	return sess.PendingInput(), nil
}

// dedupeSources keeps the first occurrence of each source identifier,
// preserving order.
func dedupeSources(sources []chain.Source) []string {
	seen := make(map[string]bool, len(sources))
	out := make([]string, 0, len(sources))
	for _, src := range sources {
		if src.ID == "" || seen[src.ID] {
			continue
		}
		seen[src.ID] = true
		out = append(out, src.ID)
	}
	return out
}
