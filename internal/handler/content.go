package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/securepass/securepass-go/internal/messaging"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

// ContentHandler exposes a content agent to remote popups.
type ContentHandler struct {
	agent messaging.Receiver
}

func NewContentHandler(agent messaging.Receiver) *ContentHandler {
	return &ContentHandler{agent: agent}
}

// HandleMessage handles POST /api/v1/content/message requests. An unfilled page
// is a 200 with success=false.
func (h *ContentHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var msg model.Message
	if !decodeJSON(w, r, 10*maxBodyBytes, &msg) {
		return
	}

	resp, err := h.agent.Receive(r.Context(), msg)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAction), errors.Is(err, service.ErrNoDocument):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("handling content message", "id", msg.ID, "action", msg.Action, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
