package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxops/exchange_backoffice/internal/apperrors"
	"github.com/fxops/exchange_backoffice/internal/core/domain"
	portsrepo "github.com/fxops/exchange_backoffice/internal/core/ports/repositories"
	"github.com/fxops/exchange_backoffice/internal/dto"
	"github.com/google/uuid"
)

// CurrencyService provides business logic for the currency registry.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryWithTx
	rateRepo     portsrepo.ExchangeRateRepositoryWithTx
}

// NewCurrencyService creates a new CurrencyService. The rate repository
// is needed for the reference currency's auto-provisioned rate.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryWithTx, rateRepo portsrepo.ExchangeRateRepositoryWithTx) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
	}
}

// CreateCurrency registers a new currency. The code is normalized to
// uppercase and must be unique. Creating the reference currency also
// provisions its 1.0 exchange rate.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	code := strings.ToUpper(req.Code)

	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check currency code %s: %w", code, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicateCurrency, code)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyID: uuid.NewString(),
		Code:       code,
		Name:       req.Name,
		Symbol:     req.Symbol,
		IsActive:   isActive,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.currencyRepo.InsertCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency %s: %w", code, err)
	}

	if isReferenceCurrency(&currency) {
		if err := s.ensureReferenceRate(ctx, &currency); err != nil {
			return nil, err
		}
	}

	return &currency, nil
}

// ensureReferenceRate provisions the reference currency's 1.0 rate if
// none exists yet. Idempotent.
func (s *CurrencyService) ensureReferenceRate(ctx context.Context, currency *domain.Currency) error {
	_, err := s.rateRepo.FindRateByCurrencyID(ctx, currency.CurrencyID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check rate for %s: %w", currency.Code, err)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyID:     currency.CurrencyID,
		RateToUSD:      referenceRate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.rateRepo.InsertRate(ctx, rate); err != nil {
		// A concurrent create already provisioned it.
		if errors.Is(err, apperrors.ErrDuplicateRate) {
			return nil
		}
		return fmt.Errorf("failed to provision %s rate: %w", currency.Code, err)
	}
	return nil
}

// ListCurrencies retrieves currencies ordered by code ascending.
func (s *CurrencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// GetCurrencyByID retrieves a currency by its identifier.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyID, err)
	}
	return currency, nil
}

// GetCurrencyByCode retrieves a currency by code, case-insensitive.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	code = strings.ToUpper(code)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code %s: %w", code, err)
	}
	return currency, nil
}

// UpdateCurrency applies a partial update to a currency. Omitted fields
// are left unchanged and the code is never mutated.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyID, err)
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}
	currency.UpdatedAt = time.Now()

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyID, err)
	}
	return currency, nil
}

// DeleteCurrency removes a currency. The associated exchange rate, if
// any, is deleted first so no orphaned rate remains; the repository
// performs both deletions in one transaction.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		return fmt.Errorf("failed to get currency %s: %w", currencyID, err)
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyID, err)
	}
	return nil
}
