package middleware

import (
	"context"
	"net/http"

	"github.com/Anish6964/RAG-Chatbot/internal/api/response"
	"github.com/Anish6964/RAG-Chatbot/internal/repository/redis"
)

type contextKey string

const SessionIDKey contextKey = "sessionID"

// SessionHeader carries the caller's session identifier.
const SessionHeader = "X-Session-ID"

// SessionContext extracts the session ID from the request header and
// adds it to the context. Chat routes require it.
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			response.BadRequest(w, "missing "+SessionHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID gets the session ID from context
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}

// RateLimitMiddleware handles rate limiting
type RateLimitMiddleware struct {
	rateLimiter *redis.RateLimiter
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(rateLimiter *redis.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter}
}

// Limit applies rate limiting keyed by session ID
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetSessionID(r.Context())
		if !ok {
			response.BadRequest(w, "missing session ID")
			return
		}

		allowed, _, resetTime, err := m.rateLimiter.Allow(r.Context(), sessionID)
		if err != nil {
			// If the rate limiter fails, allow the request
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Reset", resetTime.Format(http.TimeFormat))

		if !allowed {
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
