package domain

import "github.com/shopspring/decimal"

// ExchangeRate is the multiplier from one currency to the reference
// currency (USD). At most one rate exists per currency.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	CurrencyID     string          `json:"currencyID"`     // FK -> Currency.CurrencyID, unique
	RateToUSD      decimal.Decimal `json:"rateToUSD"`      // 1 unit of the currency in USD
	IsActive       bool            `json:"isActive"`
	CreatedBy      *string         `json:"createdBy,omitempty"` // UserID of the admin who set it
	AuditFields
}
