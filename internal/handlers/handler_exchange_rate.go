package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
	"github.com/fxops/exchange_backoffice/internal/dto"
	"github.com/fxops/exchange_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// createRate godoc
// @Summary Create an exchange rate
// @Description Sets the rate-to-USD for a currency; one rate per currency
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Duplicate rate or reference rule violation"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /exchange/rates [post]
func (h *exchangeRateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)

	rate, err := h.rateService.CreateRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Exchange rate created", slog.String("currency_id", rate.CurrencyID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listActiveRates godoc
// @Summary List active exchange rates
// @Tags rates
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange/rates [get]
func (h *exchangeRateHandler) listActiveRates(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// listAllRates godoc
// @Summary List all exchange rates including inactive ones
// @Tags rates
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange/admin/rates [get]
func (h *exchangeRateHandler) listAllRates(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getRate godoc
// @Summary Get an exchange rate by ID
// @Tags rates
// @Produce json
// @Param id path string true "Exchange rate ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/rates/{id} [get]
func (h *exchangeRateHandler) getRate(c *gin.Context) {
	rate, err := h.rateService.GetRateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateRate godoc
// @Summary Update an exchange rate by ID
// @Tags rates
// @Accept json
// @Produce json
// @Param id path string true "Exchange rate ID"
// @Param rate body dto.UpdateExchangeRateRequest true "Fields to update"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Reference rule violation"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/rates/{id} [patch]
func (h *exchangeRateHandler) updateRate(c *gin.Context) {
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateRateByCurrency godoc
// @Summary Update the exchange rate of a currency
// @Description Resolves the rate by currency id; the reference currency's row is created on demand
// @Tags rates
// @Accept json
// @Produce json
// @Param currencyId path string true "Currency ID"
// @Param rate body dto.UpdateExchangeRateRequest true "Fields to update"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Reference rule violation"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/rates/currency/{currencyId} [patch]
func (h *exchangeRateHandler) updateRateByCurrency(c *gin.Context) {
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.UpdateRateByCurrency(c.Request.Context(), c.Param("currencyId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// deleteRate godoc
// @Summary Delete an exchange rate
// @Tags rates
// @Param id path string true "Exchange rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange/rates/{id} [delete]
func (h *exchangeRateHandler) deleteRate(c *gin.Context) {
	if err := h.rateService.DeleteRate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
