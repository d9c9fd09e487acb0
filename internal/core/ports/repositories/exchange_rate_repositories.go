package repositories

import (
	"context"

	"github.com/fxops/exchange_backoffice/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateByID retrieves an exchange rate by its identifier.
	FindRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindRateByCurrencyID retrieves the single rate owned by a currency.
	FindRateByCurrencyID(ctx context.Context, currencyID string) (*domain.ExchangeRate, error)

	// ListRates retrieves exchange rates ordered by currency id ascending.
	// When activeOnly is true, inactive rates are excluded.
	ListRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// InsertRate persists a new exchange rate. The storage layer enforces
	// one rate per currency and reports violations as ErrDuplicateRate.
	InsertRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpdateRate persists changes to an existing exchange rate.
	UpdateRate(ctx context.Context, rate domain.ExchangeRate) error

	// DeleteRate removes an exchange rate.
	DeleteRate(ctx context.Context, rateID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
