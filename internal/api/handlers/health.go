package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ly2xxx/gco/internal/services"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	cache *services.CacheService
}

// NewHealthHandler creates a health handler. cache may be nil when the
// server runs without Redis.
func NewHealthHandler(cache *services.CacheService) *HealthHandler {
	return &HealthHandler{
		cache: cache,
	}
}

// GetHealth returns basic health status - always returns 200 if server is running
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gco-api",
		"time":    time.Now().UTC(),
	})
}

// GetReady reports readiness. The API serves sample data even without Redis
// or the sheet, so it is ready as soon as it is up; the cache fields tell
// operators whether responses are being cached and whether a dataset is
// currently held.
func (h *HealthHandler) GetReady(c *gin.Context) {
	cacheStatus := "disabled"
	datasetCached := false
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unreachable"
		} else {
			cacheStatus = "ok"
			datasetCached, _ = h.cache.Exists(ctx, services.DatasetCacheKey())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ready",
		"cache":          cacheStatus,
		"dataset_cached": datasetCached,
	})
}
