package services

import (
	"context"

	"github.com/fxops/exchange_backoffice/internal/core/domain"
	"github.com/fxops/exchange_backoffice/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for the rate ledger
type ExchangeRateReaderSvc interface {
	// GetRateByID retrieves an exchange rate by its identifier.
	GetRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// GetActiveRateByCurrency retrieves the active rate for a currency.
	// The reference currency yields a synthesized rate of 1.0 even when
	// no row is stored.
	GetActiveRateByCurrency(ctx context.Context, currencyID string) (*domain.ExchangeRate, error)

	// ListRates retrieves rates ordered by currency id ascending.
	ListRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for the rate ledger
type ExchangeRateWriterSvc interface {
	// CreateRate persists a new exchange rate for a currency.
	CreateRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// UpdateRate applies a partial update to a rate resolved by its id.
	UpdateRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)

	// UpdateRateByCurrency applies a partial update to the rate of a
	// currency, creating the reference currency's row if absent.
	UpdateRateByCurrency(ctx context.Context, currencyID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)

	// DeleteRate removes an exchange rate.
	DeleteRate(ctx context.Context, rateID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
