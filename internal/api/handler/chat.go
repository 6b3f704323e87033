package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Anish6964/RAG-Chatbot/internal/api/middleware"
	"github.com/Anish6964/RAG-Chatbot/internal/api/response"
	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/Anish6964/RAG-Chatbot/internal/service"
)

// ChatHandler handles chat endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// CreateSession creates a session or returns the existing one when the
// caller already carries a session ID.
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	info := h.chatService.CreateSession(r.Header.Get(middleware.SessionHeader))
	response.Created(w, info)
}

// Submit handles the submit-question event
func (h *ChatHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session ID")
		return
	}

	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	turn, err := h.chatService.Submit(r.Context(), sessionID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuestion):
			response.BadRequest(w, "question must not be blank")
		case errors.Is(err, domain.ErrSessionNotFound):
			response.NotFound(w, "unknown session")
		default:
			response.BadGateway(w, err.Error())
		}
		return
	}

	response.OK(w, domain.ChatResponse{SessionID: sessionID, Turn: *turn})
}

// History returns the session's display log
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session ID")
		return
	}

	turns, err := h.chatService.History(sessionID)
	if err != nil {
		response.NotFound(w, "unknown session")
		return
	}

	response.OK(w, turns)
}

// Clear handles the clear-chat event
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session ID")
		return
	}

	if err := h.chatService.Clear(sessionID); err != nil {
		response.NotFound(w, "unknown session")
		return
	}

	response.NoContent(w)
}

// SetInput stashes the presentation layer's draft input
func (h *ChatHandler) SetInput(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		response.BadRequest(w, "missing session ID")
		return
	}

	var req domain.PendingInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.chatService.SetPendingInput(sessionID, req.Input); err != nil {
		response.NotFound(w, "unknown session")
		return
	}

	response.NoContent(w)
}
