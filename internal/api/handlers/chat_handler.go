package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sejongtown/campus-assistant/internal/domain/entities"
	apperrors "github.com/sejongtown/campus-assistant/pkg/errors"
)

// ChatTurnService is the slice of the chat orchestrator the handler needs.
type ChatTurnService interface {
	HandleTurn(ctx context.Context, studentID, message string) (*entities.ChatReply, error)
}

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	service ChatTurnService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service ChatTurnService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	StudentID string `json:"student_id"`
	Message   string `json:"message"`
}

// HandleChat processes POST /api/chat. The response body always carries a
// "reply" field, on errors too, so the frontend can render it verbatim.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed.")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Please send a JSON body with a 'message' field.")
		return
	}

	reply, err := h.service.HandleTurn(r.Context(), req.StudentID, req.Message)
	if err != nil {
		status, msg := statusForError(err)
		if status >= http.StatusInternalServerError {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("chat turn failed")
		}
		respondWithError(w, status, msg)
		return
	}

	respondWithJSON(w, http.StatusOK, reply)
}

func statusForError(err error) (int, string) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest, apperrors.UserMessage(err, "Invalid request.")
	case apperrors.ErrorTypeUnauthorized:
		return http.StatusUnauthorized, apperrors.UserMessage(err, "Please log in first.")
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound, apperrors.UserMessage(err, "Not found.")
	case apperrors.ErrorTypeExternal:
		return http.StatusBadGateway, apperrors.UserMessage(err, "An upstream service is unavailable.")
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"reply": "Something went wrong. Please try again."}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes an error reply in the chat body shape
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"reply": message})
}
