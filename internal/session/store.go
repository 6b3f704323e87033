// Package session holds per-user conversational state in memory.
// Nothing here is persisted; a session lives as long as the process
// and is destroyed implicitly when the process exits.
package session

import (
	"sync"
	"time"

	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/google/uuid"
)

// Session is the single source of truth for one conversation: its
// identity, accumulated turns, bounded history window and pending input.
// The ID is generated once and never changes, including across Reset.
type Session struct {
	mu           sync.Mutex
	id           string
	createdAt    time.Time
	turns        []domain.Turn
	window       *Window
	pendingInput string
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Info returns the session's wire representation.
func (s *Session) Info() domain.SessionInfo {
	return domain.SessionInfo{ID: s.id, CreatedAt: s.createdAt}
}

// AppendTurn records a completed question/answer cycle in the display
// log. The turn ID equals the turn's index at creation time; numbering
// restarts at 0 after Reset. Never rejects.
func (s *Session) AppendTurn(question, answer string, sources []string) domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := domain.Turn{
		ID:        len(s.turns),
		Question:  question,
		Answer:    answer,
		Sources:   sources,
		CreatedAt: time.Now(),
	}
	s.turns = append(s.turns, turn)
	return turn
}

// Turns returns a copy of the display log, oldest first.
func (s *Session) Turns() []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// RememberExchange adds a (question, answer) pair to the history window,
// evicting the oldest pair when the window is full.
func (s *Session) RememberExchange(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.Append(question, answer)
}

// Context returns the history window contents, oldest first, for use as
// generation context.
func (s *Session) Context() []domain.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.window.AsContext()
}

// SetPendingInput stashes the presentation layer's unsubmitted input.
func (s *Session) SetPendingInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingInput = input
}

// PendingInput returns the current unsubmitted input.
func (s *Session) PendingInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingInput
}

// ClearPendingInput empties the pending input after a submission.
func (s *Session) ClearPendingInput() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingInput = ""
}

// Reset clears turns, history window and pending input. The session ID
// is preserved and turn numbering restarts at 0.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = nil
	s.window.Clear()
	s.pendingInput = ""
}

// Store keeps all live sessions keyed by session ID. Sessions are fully
// isolated from each other; the store lock only guards the map.
type Store struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	maxHistory int
}

// NewStore creates a store whose sessions keep at most maxHistory
// exchanges as generation context.
func NewStore(maxHistory int) *Store {
	return &Store{
		sessions:   make(map[string]*Session),
		maxHistory: maxHistory,
	}
}

// Create returns the session with the given ID, creating it if needed.
// An empty ID mints a fresh UUID. Creation is idempotent: asking for an
// existing ID returns the existing session untouched.
func (st *Store) Create(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s
		}
	} else {
		id = uuid.NewString()
	}

	s := &Session{
		id:        id,
		createdAt: time.Now(),
		window:    NewWindow(st.maxHistory),
	}
	st.sessions[id] = s
	return s
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session from the store.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
