package dto

import (
	"time"

	"github.com/fxops/exchange_backoffice/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code     string `json:"code" binding:"required,alpha,len=3"`
	Name     string `json:"name" binding:"required"`
	Symbol   string `json:"symbol" binding:"required"`
	IsActive *bool  `json:"isActive"` // defaults to true when omitted
}

// UpdateCurrencyRequest defines the partial update payload for a currency.
// The code is immutable and deliberately absent.
type UpdateCurrencyRequest struct {
	Name     *string `json:"name"`
	Symbol   *string `json:"symbol"`
	IsActive *bool   `json:"isActive"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID string    `json:"currencyID"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Symbol     string    `json:"symbol"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: curr.CurrencyID,
		Code:       curr.Code,
		Name:       curr.Name,
		Symbol:     curr.Symbol,
		IsActive:   curr.IsActive,
		CreatedAt:  curr.CreatedAt,
		UpdatedAt:  curr.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
