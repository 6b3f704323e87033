package session

import "github.com/Anish6964/RAG-Chatbot/internal/domain"

// Window is the bounded FIFO buffer of (question, answer) pairs used as
// conversational context for the chain. It is not the display log: the
// display log keeps every turn, the window only the most recent maxLen.
// Window is not safe for concurrent use; Session serializes access to it.
type Window struct {
	maxLen  int
	entries []domain.Exchange
}

// NewWindow creates a window holding at most maxLen exchanges.
func NewWindow(maxLen int) *Window {
	if maxLen < 1 {
		maxLen = 1
	}
	return &Window{maxLen: maxLen}
}

// Append adds an exchange, evicting the oldest entry first when the
// window is full. len(entries) <= maxLen holds after every call.
func (w *Window) Append(question, answer string) {
	if len(w.entries) == w.maxLen {
		w.entries = w.entries[1:]
	}
	w.entries = append(w.entries, domain.Exchange{Question: question, Answer: answer})
}

// AsContext returns a copy of the window contents, oldest first.
func (w *Window) AsContext() []domain.Exchange {
	out := make([]domain.Exchange, len(w.entries))
	copy(out, w.entries)
	return out
}

// Clear empties the window.
func (w *Window) Clear() {
	w.entries = nil
}

// Len returns the number of buffered exchanges.
func (w *Window) Len() int {
	return len(w.entries)
}
