package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fxops/exchange_backoffice/internal/apperrors"
	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
	"github.com/fxops/exchange_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// ratePrecision is the number of fractional digits rates are persisted
// and reported at. Rounding is half away from zero, which is what
// decimal.Round does.
const ratePrecision = 6

// ConversionService computes currency conversions. It mutates no state:
// the result is a pure function of the two rate lookups.
type ConversionService struct {
	currencySvc portssvc.CurrencyReaderSvc
	rateSvc     portssvc.ExchangeRateReaderSvc
}

// NewConversionService creates a new ConversionService.
func NewConversionService(currencySvc portssvc.CurrencyReaderSvc, rateSvc portssvc.ExchangeRateReaderSvc) *ConversionService {
	return &ConversionService{
		currencySvc: currencySvc,
		rateSvc:     rateSvc,
	}
}

// Calculate converts an amount from one currency to another via the
// reference currency: rate = fromRate / toRate, toAmount = amount * rate.
func (s *ConversionService) Calculate(ctx context.Context, req dto.CalculateExchangeRequest) (*dto.ExchangeCalculationResponse, error) {
	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, fmt.Errorf("%w: source and target currencies cannot be the same", apperrors.ErrInvalidRequest)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidRequest)
	}

	fromCurrency, err := s.currencySvc.GetCurrencyByID(ctx, req.FromCurrencyID)
	if err != nil {
		return nil, err
	}
	toCurrency, err := s.currencySvc.GetCurrencyByID(ctx, req.ToCurrencyID)
	if err != nil {
		return nil, err
	}

	if !fromCurrency.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInactiveCurrency, fromCurrency.Code)
	}
	if !toCurrency.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInactiveCurrency, toCurrency.Code)
	}

	fromRate, err := s.rateSvc.GetActiveRateByCurrency(ctx, fromCurrency.CurrencyID)
	if err != nil {
		return nil, err
	}
	toRate, err := s.rateSvc.GetActiveRateByCurrency(ctx, toCurrency.CurrencyID)
	if err != nil {
		return nil, err
	}

	if toRate.RateToUSD.IsZero() {
		return nil, fmt.Errorf("%w: stored rate for %s is zero", apperrors.ErrInvalidRate, toCurrency.Code)
	}

	exchangeRate := fromRate.RateToUSD.Div(toRate.RateToUSD)
	toAmount := req.Amount.Mul(exchangeRate)

	return &dto.ExchangeCalculationResponse{
		FromCurrencyID:   fromCurrency.CurrencyID,
		FromCurrencyCode: fromCurrency.Code,
		ToCurrencyID:     toCurrency.CurrencyID,
		ToCurrencyCode:   toCurrency.Code,
		FromAmount:       req.Amount,
		ToAmount:         toAmount.Round(ratePrecision),
		ExchangeRate:     exchangeRate.Round(ratePrecision),
		CalculatedAt:     time.Now(),
	}, nil
}
