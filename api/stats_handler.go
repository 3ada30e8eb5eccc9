package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/database"
)

type statsHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newStatsHandler(database database.Database) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()
	return statsHandler{responder: NewResponder(logger), logger: logger, database: database}
}

// getStats returns the four dashboard totals
// @Summary Dashboard stats
// @Tags Admin
// @Produce json
// @Success 200 {object} database.Stats
// @Router /api/admin/stats [get]
func (h statsHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.database.Stats(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "dashboard totals", err))
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}

type healthHandler struct {
	responder   Responder
	database    database.Database
	startupTime time.Time
}

func newHealthHandler(database database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{responder: NewResponder(logger), database: database, startupTime: startupTime}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// health reports whether the service and its database are reachable
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		response := healthResponse{
			Status:   "ok",
			Database: "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
		}
		status := http.StatusOK
		if err := h.database.Ping(ctx); err != nil {
			h.responder.logger.Error().Err(err).Msg("Database health check failed")
			response.Status = "degraded"
			response.Database = "unreachable"
			status = http.StatusServiceUnavailable
		}
		h.responder.WriteJSONStatus(w, status, response)
	}
}
