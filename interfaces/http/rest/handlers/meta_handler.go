package handlers

import (
	"net/http"

	"blogapi/application/services"

	"go.uber.org/zap"
)

// MetaHandler serves the welcome index and the aggregate stats endpoint.
type MetaHandler struct {
	stats  *services.StatsService
	logger *zap.Logger
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(stats *services.StatsService, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{
		stats:  stats,
		logger: logger,
	}
}

// Index handles GET /
func (h *MetaHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the Blog API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"users":    "/users",
			"posts":    "/posts",
			"comments": "/comments",
			"search":   "/search",
			"stats":    "/stats",
		},
	})
}

// Stats handles GET /stats
func (h *MetaHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.stats.Collect(r.Context()))
}
