package services

import (
	"context"

	"github.com/fxops/exchange_backoffice/internal/dto"
)

// ConversionSvcFacade defines the conversion calculation operation.
type ConversionSvcFacade interface {
	// Calculate converts an amount between two currencies via the
	// reference currency. No state is mutated.
	Calculate(ctx context.Context, req dto.CalculateExchangeRequest) (*dto.ExchangeCalculationResponse, error)
}
