package domain

import "time"

// Turn is one question/answer/sources record in a session's display log.
type Turn struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Sources   []string  `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}

// Exchange is a single (question, answer) pair kept in the bounded
// history window and fed to the chain as conversational context.
type Exchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SessionInfo is the wire representation of a session's identity.
type SessionInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
