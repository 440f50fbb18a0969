package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/session"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/frahmantamala/hr-portal/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger   *slog.Logger
	Sessions *session.Manager
	Views    *view.Renderer
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger, sessions *session.Manager, views *view.Renderer) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
	}
	return &BaseHandler{Logger: lg, Sessions: sessions, Views: views}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		h.Logger.Error("http error", "status", status, "message", message)
	}
	h.WriteJSON(w, status, map[string]interface{}{
		"code":    status,
		"message": message,
	})
}

// Flash queues a one-shot message for the next rendered page.
func (h *BaseHandler) Flash(w http.ResponseWriter, r *http.Request, category, message string) {
	s := session.FromContext(r.Context())
	s.AddFlash(category, message)
	h.saveSession(w, s)
}

// Redirect sends the browser to target after a form post.
func (h *BaseHandler) Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

// FlashRedirect is Flash followed by Redirect.
func (h *BaseHandler) FlashRedirect(w http.ResponseWriter, r *http.Request, category, message, target string) {
	h.Flash(w, r, category, message)
	h.Redirect(w, r, target)
}

// Render writes the named page, consuming pending flashes.
func (h *BaseHandler) Render(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	ctx := r.Context()
	page.User = internal.PrincipalFromContext(ctx)

	s := session.FromContext(ctx)
	if len(s.Flashes) > 0 {
		page.Flashes = append(s.PopFlashes(), page.Flashes...)
		h.saveSession(w, s)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if h.Views == nil {
		w.WriteHeader(status)
		return
	}
	var buf bytes.Buffer
	if err := h.Views.Render(&buf, name, page); err != nil {
		logger.From(ctx).Error("Render: failed to render page", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.From(ctx).Warn("Render: failed to write page", "page", name, "error", err)
	}
}

// NotFound renders the 404 page.
func (h *BaseHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Render(w, r, http.StatusNotFound, "not_found", view.Page{Title: "Not found"})
}

// Fail turns err into the matching error page. Not-found errors get the 404
// page; everything else is logged and rendered with its status code.
func (h *BaseHandler) Fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, internal.ErrRecordNotFound) {
		h.NotFound(w, r)
		return
	}

	status := internal.StatusCode(err)
	message := "The request could not be completed."
	if appErr, ok := internal.IsAppError(err); ok && status < http.StatusInternalServerError {
		message = appErr.GetDetailedMessage()
	} else {
		logger.From(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
	}
	h.Render(w, r, status, "error", view.Page{Title: "Error", Data: message})
}

func (h *BaseHandler) saveSession(w http.ResponseWriter, s *session.Session) {
	if h.Sessions == nil {
		return
	}
	if err := h.Sessions.Save(w, s); err != nil {
		h.Logger.Error("failed to save session", "error", err)
	}
}
