package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/frahmantamala/hr-portal/internal/transport"
	"github.com/frahmantamala/hr-portal/pkg/logger"
	"github.com/jmoiron/sqlx"
)

const (
	DatabaseOK    = "ok"
	DatabaseError = "error"

	// timestampLayout renders UTC with microseconds and a literal Z.
	timestampLayout = "2006-01-02T15:04:05.000000"
	probeTimeout    = 2 * time.Second
)

type HealthResponse struct {
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type HealthHandler struct {
	*transport.BaseHandler
	db  *sqlx.DB
	now func() time.Time
}

func NewHealthHandler(base *transport.BaseHandler, db *sqlx.DB) *HealthHandler {
	return &HealthHandler{BaseHandler: base, db: db, now: time.Now}
}

// Ping reports that the process is serving.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// Health runs a one-row read against the employees table. The answer is
// always 200; the database field carries the outcome.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status := DatabaseOK
	if err := h.probe(ctx); err != nil {
		logger.From(ctx).Warn("health: database probe failed", "error", err)
		status = DatabaseError
	}

	h.WriteJSON(w, http.StatusOK, HealthResponse{
		Database:  status,
		Timestamp: h.now().UTC().Format(timestampLayout) + "Z",
	})
}

func (h *HealthHandler) probe(ctx context.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	var ids []int64
	return h.db.SelectContext(ctx, &ids, "SELECT id FROM employees LIMIT 1")
}
