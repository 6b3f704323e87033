package session

import (
	"fmt"
	"testing"

	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateIsIdempotent(t *testing.T) {
	st := NewStore(10)

	s1 := st.Create("")
	require.NotEmpty(t, s1.ID())

	s2 := st.Create(s1.ID())
	assert.Same(t, s1, s2, "existing ID must return the existing session")
	assert.Equal(t, 1, st.Len())
}

func TestStore_GetUnknownSession(t *testing.T) {
	st := NewStore(10)

	_, err := st.Get("nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSession_TurnNumbering(t *testing.T) {
	st := NewStore(10)
	s := st.Create("")

	for i := 0; i < 5; i++ {
		turn := s.AppendTurn(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i), nil)
		assert.Equal(t, i, turn.ID)
	}

	turns := s.Turns()
	require.Len(t, turns, 5)
	for i, turn := range turns {
		assert.Equal(t, i, turn.ID, "turns[i].id == i must hold")
	}
}

func TestSession_Reset(t *testing.T) {
	st := NewStore(10)
	s := st.Create("")
	id := s.ID()

	s.AppendTurn("q0", "a0", []string{"src"})
	s.RememberExchange("q0", "a0")
	s.SetPendingInput("draft")

	s.Reset()

	assert.Equal(t, id, s.ID(), "reset preserves the session ID")
	assert.Empty(t, s.Turns())
	assert.Empty(t, s.Context())
	assert.Empty(t, s.PendingInput())

	// numbering restarts at 0 after reset
	turn := s.AppendTurn("q1", "a1", nil)
	assert.Equal(t, 0, turn.ID)
}

func TestSession_ContextRespectsWindow(t *testing.T) {
	st := NewStore(2)
	s := st.Create("")

	s.RememberExchange("q0", "a0")
	s.RememberExchange("q1", "a1")
	s.RememberExchange("q2", "a2")

	ctx := s.Context()
	require.Len(t, ctx, 2)
	assert.Equal(t, domain.Exchange{Question: "q1", Answer: "a1"}, ctx[0])
	assert.Equal(t, domain.Exchange{Question: "q2", Answer: "a2"}, ctx[1])
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	st := NewStore(10)
	a := st.Create("")
	b := st.Create("")

	a.AppendTurn("qa", "aa", nil)
	a.RememberExchange("qa", "aa")

	assert.Empty(t, b.Turns())
	assert.Empty(t, b.Context())
}

func TestSession_PendingInput(t *testing.T) {
	st := NewStore(10)
	s := st.Create("")

	s.SetPendingInput("half-typed question")
	assert.Equal(t, "half-typed question", s.PendingInput())

	s.ClearPendingInput()
	assert.Empty(t, s.PendingInput())
}
