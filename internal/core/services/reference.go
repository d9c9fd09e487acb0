package services

import (
	"fmt"

	"github.com/fxops/exchange_backoffice/internal/apperrors"
	"github.com/fxops/exchange_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReferenceCurrencyCode is the base unit all rates are expressed in.
const ReferenceCurrencyCode = "USD"

var referenceRate = decimal.NewFromInt(1)

func isReferenceCurrency(currency *domain.Currency) bool {
	return currency.Code == ReferenceCurrencyCode
}

// checkReferenceRate enforces the pinned-rate rule: the reference
// currency's rate is always exactly 1.0. Every create and update path
// goes through this single check so the policy cannot drift.
func checkReferenceRate(currency *domain.Currency, rate decimal.Decimal) error {
	if isReferenceCurrency(currency) && !rate.Equal(referenceRate) {
		return fmt.Errorf("%w: %s rate is fixed at 1.0", apperrors.ErrInvalidRate, ReferenceCurrencyCode)
	}
	return nil
}

// syntheticReferenceRate builds the virtual rate record returned for
// the reference currency when no row is stored. The currency id doubles
// as a stable placeholder identifier and the timestamps are copied from
// the currency.
func syntheticReferenceRate(currency *domain.Currency) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: currency.CurrencyID,
		CurrencyID:     currency.CurrencyID,
		RateToUSD:      referenceRate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: currency.CreatedAt,
			UpdatedAt: currency.UpdatedAt,
		},
	}
}
