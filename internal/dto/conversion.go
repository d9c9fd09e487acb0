package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculateExchangeRequest defines the input for a conversion calculation.
type CalculateExchangeRequest struct {
	FromCurrencyID string          `json:"fromCurrencyID" binding:"required,uuid"`
	ToCurrencyID   string          `json:"toCurrencyID" binding:"required,uuid"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
}

// ExchangeCalculationResponse carries the result of a conversion.
// ExchangeRate and ToAmount are rounded to 6 fractional digits.
type ExchangeCalculationResponse struct {
	FromCurrencyID   string          `json:"fromCurrencyID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyID     string          `json:"toCurrencyID"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	FromAmount       decimal.Decimal `json:"fromAmount"`
	ToAmount         decimal.Decimal `json:"toAmount"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	CalculatedAt     time.Time       `json:"calculatedAt"`
}
