package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxops/exchange_backoffice/internal/apperrors"
	"github.com/fxops/exchange_backoffice/internal/core/domain"
	portsrepo "github.com/fxops/exchange_backoffice/internal/core/ports/repositories"
	portssvc "github.com/fxops/exchange_backoffice/internal/core/ports/services"
	"github.com/fxops/exchange_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for the rate ledger.
type ExchangeRateService struct {
	rateRepo    portsrepo.ExchangeRateRepositoryWithTx
	currencySvc portssvc.CurrencyReaderSvc
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryWithTx, currencySvc portssvc.CurrencyReaderSvc) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
	}
}

// CreateRate persists a new exchange rate. The owning currency must
// exist, its rate must not exist yet, and the reference currency only
// accepts exactly 1.0.
func (s *ExchangeRateService) CreateRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	currency, err := s.currencySvc.GetCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	if err := validateRateValue(req.RateToUSD); err != nil {
		return nil, err
	}
	if err := checkReferenceRate(currency, req.RateToUSD); err != nil {
		return nil, err
	}

	existing, err := s.rateRepo.FindRateByCurrencyID(ctx, currency.CurrencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check rate for currency %s: %w", currency.Code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency %s, use update instead", apperrors.ErrDuplicateRate, currency.Code)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var createdBy *string
	if creatorUserID != "" {
		createdBy = &creatorUserID
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyID:     currency.CurrencyID,
		RateToUSD:      req.RateToUSD,
		IsActive:       isActive,
		CreatedBy:      createdBy,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.rateRepo.InsertRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create rate for currency %s: %w", currency.Code, err)
	}
	return &rate, nil
}

// ListRates retrieves rates ordered by currency id ascending.
func (s *ExchangeRateService) ListRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// GetRateByID retrieves an exchange rate by its identifier.
func (s *ExchangeRateService) GetRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate %s: %w", rateID, err)
	}
	return rate, nil
}

// GetActiveRateByCurrency retrieves the active rate for a currency.
// The reference currency never requires a stored row: a synthesized
// 1.0 rate is returned instead. Any other currency without an active
// stored rate yields ErrNotFound so conversions never fall back to a
// stale or disabled rate.
func (s *ExchangeRateService) GetActiveRateByCurrency(ctx context.Context, currencyID string) (*domain.ExchangeRate, error) {
	currency, err := s.currencySvc.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	if isReferenceCurrency(currency) {
		rate := syntheticReferenceRate(currency)
		return &rate, nil
	}

	rate, err := s.rateRepo.FindRateByCurrencyID(ctx, currency.CurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no active rate for currency %s", apperrors.ErrNotFound, currency.Code)
		}
		return nil, fmt.Errorf("failed to get rate for currency %s: %w", currency.Code, err)
	}
	if !rate.IsActive {
		return nil, fmt.Errorf("%w: no active rate for currency %s", apperrors.ErrNotFound, currency.Code)
	}
	return rate, nil
}

// UpdateRate applies a partial update to a rate resolved by id.
func (s *ExchangeRateService) UpdateRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate %s: %w", rateID, err)
	}

	currency, err := s.currencySvc.GetCurrencyByID(ctx, rate.CurrencyID)
	if err != nil {
		return nil, err
	}

	if err := s.applyRatePatch(rate, currency, req); err != nil {
		return nil, err
	}

	if err := s.rateRepo.UpdateRate(ctx, *rate); err != nil {
		return nil, fmt.Errorf("failed to update rate %s: %w", rateID, err)
	}
	return rate, nil
}

// UpdateRateByCurrency applies a partial update to the rate owned by a
// currency. The reference currency's rate may only exist virtually, so
// a missing row is created on demand rather than reported as absent.
func (s *ExchangeRateService) UpdateRateByCurrency(ctx context.Context, currencyID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	currency, err := s.currencySvc.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindRateByCurrencyID(ctx, currency.CurrencyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to get rate for currency %s: %w", currency.Code, err)
		}
		if !isReferenceCurrency(currency) {
			return nil, fmt.Errorf("%w: no rate for currency %s", apperrors.ErrNotFound, currency.Code)
		}
		return s.createReferenceRow(ctx, currency, req)
	}

	if err := s.applyRatePatch(rate, currency, req); err != nil {
		return nil, err
	}

	if err := s.rateRepo.UpdateRate(ctx, *rate); err != nil {
		return nil, fmt.Errorf("failed to update rate for currency %s: %w", currency.Code, err)
	}
	return rate, nil
}

// DeleteRate removes an exchange rate.
func (s *ExchangeRateService) DeleteRate(ctx context.Context, rateID string) error {
	if _, err := s.rateRepo.FindRateByID(ctx, rateID); err != nil {
		return fmt.Errorf("failed to get rate %s: %w", rateID, err)
	}
	if err := s.rateRepo.DeleteRate(ctx, rateID); err != nil {
		return fmt.Errorf("failed to delete rate %s: %w", rateID, err)
	}
	return nil
}

// applyRatePatch validates and applies an update payload in place.
func (s *ExchangeRateService) applyRatePatch(rate *domain.ExchangeRate, currency *domain.Currency, req dto.UpdateExchangeRateRequest) error {
	if req.RateToUSD != nil {
		if err := validateRateValue(*req.RateToUSD); err != nil {
			return err
		}
		if err := checkReferenceRate(currency, *req.RateToUSD); err != nil {
			return err
		}
		rate.RateToUSD = *req.RateToUSD
	}
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}
	rate.UpdatedAt = time.Now()
	return nil
}

// createReferenceRow materializes the reference currency's virtual rate
// as a stored row with the pinned 1.0 value.
func (s *ExchangeRateService) createReferenceRow(ctx context.Context, currency *domain.Currency, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if req.RateToUSD != nil {
		if err := checkReferenceRate(currency, *req.RateToUSD); err != nil {
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyID:     currency.CurrencyID,
		RateToUSD:      referenceRate,
		IsActive:       isActive,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.rateRepo.InsertRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create rate for currency %s: %w", currency.Code, err)
	}
	return &rate, nil
}

// validateRateValue rejects rates that could never take part in a
// conversion. Zero would surface later as a division by zero.
func validateRateValue(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: rate must be positive", apperrors.ErrInvalidRate)
	}
	return nil
}
