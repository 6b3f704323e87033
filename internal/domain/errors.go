package domain

import "errors"

var (
	// ErrSessionNotFound indicates an unknown session ID
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyQuestion indicates a blank or whitespace-only submission.
	// Blank submissions are ignored; no turn is recorded.
	ErrEmptyQuestion = errors.New("question is empty")
)
