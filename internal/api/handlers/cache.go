package handlers

import (
	"net/http"
	"strompris/internal/cache"
	"strompris/internal/models"

	"github.com/gin-gonic/gin"
)

// CacheHandler handles operator cache actions
type CacheHandler struct {
	cache *cache.Service
}

// NewCacheHandler creates a new CacheHandler
func NewCacheHandler(cacheSvc *cache.Service) *CacheHandler {
	return &CacheHandler{cache: cacheSvc}
}

// ClearCache godoc
// @Summary Clear all cached data
// @Description Removes every cache entry unconditionally, including entries kept as stale fallbacks
// @Tags cache
// @Accept json
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /cache/clear [post]
func (h *CacheHandler) ClearCache(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to clear cache"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "cache cleared"})
}
