package domain

// Currency represents a currency known to the registry.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary Key (UUID)
	Code       string `json:"code"`       // e.g. "USD", unique, always uppercase
	Name       string `json:"name"`       // e.g. "US Dollar"
	Symbol     string `json:"symbol"`     // e.g. "$"
	IsActive   bool   `json:"isActive"`
	AuditFields
}
