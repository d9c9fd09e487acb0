package dto

import (
	"time"

	"github.com/fxops/exchange_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the data needed to create an exchange rate.
type CreateExchangeRateRequest struct {
	CurrencyID string          `json:"currencyID" binding:"required,uuid"`
	RateToUSD  decimal.Decimal `json:"rateToUSD" binding:"required"`
	IsActive   *bool           `json:"isActive"` // defaults to true when omitted
}

// UpdateExchangeRateRequest defines the partial update payload for a rate.
type UpdateExchangeRateRequest struct {
	RateToUSD *decimal.Decimal `json:"rateToUSD"`
	IsActive  *bool            `json:"isActive"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	CurrencyID     string          `json:"currencyID"`
	RateToUSD      decimal.Decimal `json:"rateToUSD"`
	IsActive       bool            `json:"isActive"`
	CreatedBy      *string         `json:"createdBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to a response DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		CurrencyID:     rate.CurrencyID,
		RateToUSD:      rate.RateToUSD,
		IsActive:       rate.IsActive,
		CreatedBy:      rate.CreatedBy,
		CreatedAt:      rate.CreatedAt,
		UpdatedAt:      rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		res[i] = ToExchangeRateResponse(&rates[i])
	}
	return res
}
