package services

import (
	"context"

	"github.com/fxops/exchange_backoffice/internal/core/domain"
	"github.com/fxops/exchange_backoffice/internal/dto"
)

// CurrencyReaderSvc defines read operations for the currency registry
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a currency by its identifier.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by code, case-insensitive.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by code ascending.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for the currency registry
type CurrencyWriterSvc interface {
	// CreateCurrency registers a new currency; the reference currency is
	// auto-provisioned with a 1.0 rate.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency applies a partial update. The code never changes.
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	// DeleteCurrency removes a currency, cascading to its exchange rate.
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
