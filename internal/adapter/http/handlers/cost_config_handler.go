package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "interiorquote/internal/adapter/http/dto/request"
	response "interiorquote/internal/adapter/http/dto/response"
	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"
	"interiorquote/pkg"

	"github.com/gin-gonic/gin"
)

// CostConfigHandler manages the pricing catalog.
type CostConfigHandler struct {
	usecase usecase.ICostConfigUseCase
}

func NewCostConfigHandler(uc usecase.ICostConfigUseCase) *CostConfigHandler {
	return &CostConfigHandler{usecase: uc}
}

// List returns the active entries, or every entry with ?all=true.
func (h *CostConfigHandler) List(c *gin.Context) {
	all, _ := strconv.ParseBool(c.Query("all"))

	var (
		cs  []entities.CostConfig
		err error
	)
	if all {
		cs, err = h.usecase.ListAll(c.Request.Context())
	} else {
		cs, err = h.usecase.ListActive(c.Request.Context())
	}
	if err != nil {
		respondError(c, mapCostConfigError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCostConfigs(cs))
}

func (h *CostConfigHandler) Upsert(c *gin.Context) {
	var payload request.CostConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	saved, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapCostConfigError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCostConfig(saved))
}

func mapCostConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCostConfig):
		return pkg.NewDomainErrorSimple("INVALID_COST_CONFIG", "Invalid cost config", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
