package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/pkg/logger"
	"github.com/go-chi/chi"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(base *transport.BaseHandler, svc *Service) *Handler {
	return &Handler{BaseHandler: base, Service: svc}
}

func (h *Handler) Mount(r chi.Router) {
	r.Post("/api/chat", h.Chat)
}

// Chat answers with 400 only for a missing message. A body that is not JSON
// is read as an empty message.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.From(r.Context()).Debug("Chat: unreadable body", "error", err)
		req = Request{}
	}

	resp, err := h.Service.Ask(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrMessageRequired) {
			h.WriteJSON(w, http.StatusBadRequest, Response{Error: ErrMessageRequired.Message})
			return
		}
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}
