package handlers

import (
	"net/http"
	"strconv"
	"strompris/internal/models"
	"strompris/internal/provider"

	"github.com/gin-gonic/gin"
)

// ProviderHandler handles manual provider runs
type ProviderHandler struct {
	manager *provider.Manager
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(manager *provider.Manager) *ProviderHandler {
	return &ProviderHandler{manager: manager}
}

// TriggerHvakosterFetch godoc
// @Summary Trigger a price cache warm
// @Description Fetches spot prices from the Strømpris API and overwrites the aggregated price cache
// @Tags providers
// @Accept json
// @Produce json
// @Param days query int false "Day window to warm (1-30)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters or provider disabled"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Upstream fetch failed"
// @Router /providers/hvakoster/fetch [post]
func (h *ProviderHandler) TriggerHvakosterFetch(c *gin.Context) {
	var opts *provider.RunOptions
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "days must be an integer"})
			return
		}
		opts = &provider.RunOptions{WindowDays: days}
	}

	if err := h.manager.RunProvider(c.Request.Context(), "hvakoster", opts); err == provider.ErrProviderNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "provider not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "provider run failed"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "price cache refreshed"})
}
