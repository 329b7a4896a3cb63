package handlers

import (
	"net/http"
	"strompris/internal/models"
	"strompris/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles contract catalog requests
type ContractHandler struct {
	repo repository.ContractRepository
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(repo repository.ContractRepository) *ContractHandler {
	return &ContractHandler{repo: repo}
}

// ListContracts godoc
// @Summary List catalog contracts
// @Description Returns the contract catalog, optionally filtered by contract type and customer type
// @Tags contracts
// @Accept json
// @Produce json
// @Param type query string false "Contract type ('spot', 'fixed', 'variable')"
// @Param customer_type query string false "Customer type ('private' or 'business')"
// @Success 200 {array} models.Contract
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	filter := repository.ContractFilter{}

	if rawType := c.Query("type"); rawType != "" {
		contractType := models.ParseContractType(rawType)
		filter.Type = &contractType
	}
	if customerType := c.Query("customer_type"); customerType != "" {
		filter.CustomerType = &customerType
	}

	contracts, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch contracts"})
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// GetContract godoc
// @Summary Get a contract by ID
// @Description Returns a catalog contract by its ID
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} models.Contract
// @Failure 400 {object} models.ErrorResponse "Invalid contract ID"
// @Failure 404 {object} models.ErrorResponse "Contract not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid contract ID"})
		return
	}

	contract, err := h.repo.GetByID(c.Request.Context(), id)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "contract not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch contract"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// CreateContract godoc
// @Summary Create a catalog contract
// @Description Creates a contract. The contract type and price units are normalized on ingest; prices declared in øre are stored as NOK.
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body models.CreateContractRequest true "Contract to create"
// @Success 201 {object} models.Contract
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req models.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	contract := req.Contract()
	if err := h.repo.Create(c.Request.Context(), &contract); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create contract"})
		return
	}

	c.JSON(http.StatusCreated, contract)
}

// UpdateContract godoc
// @Summary Update a catalog contract
// @Description Replaces an existing contract. The contract type and price units are normalized on ingest.
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param contract body models.UpdateContractRequest true "Contract fields"
// @Success 200 {object} models.Contract
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Contract not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid contract ID"})
		return
	}

	var req models.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	contract := req.Contract()
	contract.ID = id
	if err := h.repo.Update(c.Request.Context(), &contract); err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "contract not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update contract"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// DeleteContract godoc
// @Summary Delete a catalog contract
// @Description Deletes an existing contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Success 204 "Contract deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid contract ID"
// @Failure 404 {object} models.ErrorResponse "Contract not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid contract ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "contract not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete contract"})
		return
	}

	c.Status(http.StatusNoContent)
}
