package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"blogapi/pkg/errors"

	"go.uber.org/zap"
)

// respondJSON writes data as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps a service error onto the wire: the AppError carries
// its own HTTP status, anything else is a 500.
func respondAppError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		respondError(w, logger, appErr.HTTPStatus, appErr.Message)
		return
	}
	logger.Error("unhandled error", zap.Error(err))
	respondError(w, logger, http.StatusInternalServerError, "internal error")
}

// parseSkipLimit reads skip/limit query params, falling back to defaultLimit
// and clamping limit to maxLimit. Malformed or negative values fall back to
// the defaults rather than erroring.
func parseSkipLimit(r *http.Request, defaultLimit, maxLimit int) (skip, limit int) {
	limit = defaultLimit
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}
