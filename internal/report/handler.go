package report

import (
	"net/http"

	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/internal/transport/view"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(base *transport.BaseHandler, svc *Service) *Handler {
	return &Handler{BaseHandler: base, Service: svc}
}

func (h *Handler) Mount(r chi.Router) {
	r.Get("/", h.Dashboard)
	r.Get("/reports", h.Reports)
	r.Get("/ess", h.SelfService)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.Dashboard(r.Context())
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.Render(w, r, http.StatusOK, "dashboard", view.Page{Title: "Dashboard", Data: d})
}

func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.Metrics(r.Context())
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.Render(w, r, http.StatusOK, "reports", view.Page{Title: "Reports", Nav: "reports", Data: m})
}

func (h *Handler) SelfService(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Portal(r.Context())
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.Render(w, r, http.StatusOK, "ess", view.Page{Title: "Self-service", Nav: "ess", Data: p})
}
