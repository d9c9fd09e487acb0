package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
	"github.com/fxops/exchange_backoffice/internal/dto"
	"github.com/fxops/exchange_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles conversion calculation requests.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// calculate godoc
// @Summary Calculate a currency conversion
// @Description Converts an amount between two currencies via their USD rates
// @Tags exchange
// @Accept json
// @Produce json
// @Param calculation body dto.CalculateExchangeRequest true "Conversion input"
// @Success 200 {object} dto.ExchangeCalculationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive currency"
// @Failure 404 {object} ErrorResponse "Currency or active rate not found"
// @Router /exchange/calculate [post]
func (h *conversionHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CalculateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for calculate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.conversionService.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
