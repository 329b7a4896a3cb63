package handlers

import (
	"net/http"
	"strompris/internal/deals"
	"strompris/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	// defaultDealLimit is used when the limit query parameter is omitted
	defaultDealLimit = 5
	// maxDealLimit bounds the result size; the product list page uses it
	maxDealLimit = 50
	// defaultAnnualConsumption is the household consumption assumed when
	// the caller does not provide one
	defaultAnnualConsumption = 16000
)

// DealsHandler handles ranked deal list requests
type DealsHandler struct {
	svc *deals.Service
}

// NewDealsHandler creates a new DealsHandler
func NewDealsHandler(svc *deals.Service) *DealsHandler {
	return &DealsHandler{svc: svc}
}

// dealsQuery binds and validates the deal list query parameters
type dealsQuery struct {
	Area              string  `form:"area" binding:"required,pricearea"`
	CustomerType      string  `form:"customer_type" binding:"omitempty,customertype"`
	Limit             int     `form:"limit" binding:"omitempty,min=1,max=50"`
	AnnualConsumption float64 `form:"annual_consumption" binding:"omitempty,gt=0"`
}

// GetRankedDeals godoc
// @Summary Get ranked contract deals
// @Description Returns contracts available in a price area ranked ascending by computed monthly cost
// @Tags deals
// @Accept json
// @Produce json
// @Param area query string true "Price area code (e.g. 'NO1')"
// @Param customer_type query string false "Customer type filter ('private' or 'business')"
// @Param limit query int false "Maximum result size (1-50, default 5)"
// @Param annual_consumption query number false "Annual consumption in kWh (default 16000)"
// @Success 200 {object} models.RankedDealsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Deal data unavailable"
// @Router /deals [get]
func (h *DealsHandler) GetRankedDeals(c *gin.Context) {
	var q dealsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid query parameters"})
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultDealLimit
	}
	if q.AnnualConsumption == 0 {
		q.AnnualConsumption = defaultAnnualConsumption
	}

	resp, err := h.svc.TopDeals(c.Request.Context(), deals.Query{
		AreaCode:          q.Area,
		CustomerType:      q.CustomerType,
		Limit:             q.Limit,
		AnnualConsumption: q.AnnualConsumption,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "deal data unavailable"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
