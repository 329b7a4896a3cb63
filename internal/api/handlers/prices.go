package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strompris/internal/aggregator"
	"strompris/internal/models"
	"strompris/internal/prices"

	"github.com/gin-gonic/gin"
)

// PricesHandler handles aggregated spot price requests
type PricesHandler struct {
	svc *prices.Service
	// defaultWindowDays is used when the days query parameter is omitted
	defaultWindowDays int
}

// NewPricesHandler creates a new PricesHandler
func NewPricesHandler(svc *prices.Service, defaultWindowDays int) *PricesHandler {
	return &PricesHandler{svc: svc, defaultWindowDays: defaultWindowDays}
}

// GetAggregatedPrices godoc
// @Summary Get aggregated spot prices
// @Description Returns daily price summaries per price area and the national average over a day window
// @Tags prices
// @Accept json
// @Produce json
// @Param days query int false "Day window (1-30, default 7)"
// @Success 200 {object} models.AggregatedPricesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid day window"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Price data unavailable"
// @Router /prices [get]
func (h *PricesHandler) GetAggregatedPrices(c *gin.Context) {
	windowDays := h.defaultWindowDays
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "days must be an integer"})
			return
		}
		windowDays = days
	}

	resp, err := h.svc.Aggregated(c.Request.Context(), windowDays)
	if errors.Is(err, aggregator.ErrInvalidWindow) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: aggregator.ErrInvalidWindow.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "price data unavailable"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAreaAverage godoc
// @Summary Get the price summary for one area
// @Description Returns the current hourly price and the window average for a price area
// @Tags prices
// @Accept json
// @Produce json
// @Param area path string true "Price area code (e.g. 'NO1')"
// @Success 200 {object} models.AreaAverageResponse
// @Failure 404 {object} models.ErrorResponse "Unknown price area"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Price data unavailable"
// @Router /prices/areas/{area} [get]
func (h *PricesHandler) GetAreaAverage(c *gin.Context) {
	resp, err := h.svc.AreaAverage(c.Request.Context(), c.Param("area"))
	if errors.Is(err, aggregator.ErrUnknownArea) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown price area"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "price data unavailable"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
