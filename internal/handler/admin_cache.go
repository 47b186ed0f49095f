package handler

import (
	"net/http"

	"github.com/osse101/slotengine/internal/machine"
)

// AdminCacheHandler exposes engine cache statistics
type AdminCacheHandler struct {
	service machine.Service
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(service machine.Service) *AdminCacheHandler {
	return &AdminCacheHandler{service: service}
}

// HandleGetCacheStats returns engine cache hit/miss counters
// GET /api/v1/admin/cache/stats
// @Summary Get engine cache stats
// @Description Returns engine cache hit/miss statistics for monitoring
// @Tags admin
// @Produce json
// @Success 200 {object} machine.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetCacheStats())
}
