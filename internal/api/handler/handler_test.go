package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anish6964/RAG-Chatbot/internal/api/handler"
	"github.com/Anish6964/RAG-Chatbot/internal/api/middleware"
	"github.com/Anish6964/RAG-Chatbot/internal/chain"
	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/Anish6964/RAG-Chatbot/internal/service"
	"github.com/Anish6964/RAG-Chatbot/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	result *chain.Result
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, question string, history []domain.Exchange) (*chain.Result, error) {
	return f.result, f.err
}

func newChatService(runner chain.Runner) (*service.ChatService, string) {
	store := session.NewStore(10)
	svc := service.NewChatService(store, runner)
	return svc, svc.CreateSession("").ID
}

// makeJSONRequest builds a request with the session injected the way
// the SessionContext middleware would.
func makeJSONRequest(method, path, sessionID string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		ctx := context.WithValue(req.Context(), middleware.SessionIDKey, sessionID)
		req = req.WithContext(ctx)
	}
	return req
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestChatHandler_Submit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, sessionID := newChatService(&fakeRunner{result: &chain.Result{
			Answer:  "An onboarding guide.",
			Sources: []chain.Source{{ID: "doc-1"}},
		}})
		h := handler.NewChatHandler(svc)

		req := makeJSONRequest(http.MethodPost, "/api/v1/chat", sessionID,
			domain.ChatRequest{Question: "What is the handbook?"})
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			Success bool                `json:"success"`
			Data    domain.ChatResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.True(t, response.Success)
		assert.Equal(t, sessionID, response.Data.SessionID)
		assert.Equal(t, 0, response.Data.Turn.ID)
		assert.Equal(t, "An onboarding guide.", response.Data.Turn.Answer)
		assert.Equal(t, []string{"doc-1"}, response.Data.Turn.Sources)
	})

	t.Run("blank question", func(t *testing.T) {
		svc, sessionID := newChatService(&fakeRunner{})
		h := handler.NewChatHandler(svc)

		req := makeJSONRequest(http.MethodPost, "/api/v1/chat", sessionID,
			domain.ChatRequest{Question: "   "})
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing session", func(t *testing.T) {
		svc, _ := newChatService(&fakeRunner{})
		h := handler.NewChatHandler(svc)

		req := makeJSONRequest(http.MethodPost, "/api/v1/chat", "",
			domain.ChatRequest{Question: "hello"})
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("chain failure maps to bad gateway", func(t *testing.T) {
		svc, sessionID := newChatService(&fakeRunner{err: assert.AnError})
		h := handler.NewChatHandler(svc)

		req := makeJSONRequest(http.MethodPost, "/api/v1/chat", sessionID,
			domain.ChatRequest{Question: "hello"})
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestChatHandler_ClearAndHistory(t *testing.T) {
	svc, sessionID := newChatService(&fakeRunner{result: &chain.Result{Answer: "a"}})
	h := handler.NewChatHandler(svc)

	// one successful turn
	req := makeJSONRequest(http.MethodPost, "/api/v1/chat", sessionID,
		domain.ChatRequest{Question: "q"})
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// history shows it
	req = makeJSONRequest(http.MethodGet, "/api/v1/chat/history", sessionID, nil)
	rec = httptest.NewRecorder()
	h.History(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var histResp struct {
		Data []domain.Turn `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&histResp))
	assert.Len(t, histResp.Data, 1)

	// clear empties it
	req = makeJSONRequest(http.MethodPost, "/api/v1/chat/clear", sessionID, nil)
	rec = httptest.NewRecorder()
	h.Clear(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = makeJSONRequest(http.MethodGet, "/api/v1/chat/history", sessionID, nil)
	rec = httptest.NewRecorder()
	h.History(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	histResp.Data = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&histResp))
	assert.Empty(t, histResp.Data)
}

func TestChatHandler_CreateSession(t *testing.T) {
	svc, existing := newChatService(&fakeRunner{})
	h := handler.NewChatHandler(svc)

	// no header mints a new session
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	rec := httptest.NewRecorder()
	h.CreateSession(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data domain.SessionInfo `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.Data.ID)
	assert.NotEqual(t, existing, created.Data.ID)

	// an existing ID is returned unchanged
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	req.Header.Set(middleware.SessionHeader, existing)
	rec = httptest.NewRecorder()
	h.CreateSession(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	created.Data = domain.SessionInfo{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, existing, created.Data.ID)
}
