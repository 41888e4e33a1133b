package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/employee-task-api/internal/api/shared"
	"github.com/phrazzld/employee-task-api/internal/platform/logger"
	"github.com/phrazzld/employee-task-api/internal/redact"
)

// Pinger is satisfied by *sql.DB and *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler that pings db with a short timeout.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// ServeHTTP handles GET /health requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(r.Context()).Warn("health check failed", "error", redact.Error(err))
		shared.RespondWithText(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	shared.RespondWithText(w, http.StatusOK, "OK")
}
