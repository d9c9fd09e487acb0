package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateCurrency indicates a currency with the same code already exists.
var ErrDuplicateCurrency = errors.New("currency already exists")

// ErrDuplicateRate indicates an exchange rate already exists for the currency.
var ErrDuplicateRate = errors.New("exchange rate already exists for currency")

// ErrDuplicateUser indicates a user with the same email already exists.
var ErrDuplicateUser = errors.New("user already exists")

// ErrInvalidRequest indicates malformed or self-referential input.
var ErrInvalidRequest = errors.New("invalid request")

// ErrInvalidRate indicates a breach of an exchange rate domain rule,
// such as changing the reference currency rate or a non-positive rate.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrInactiveCurrency indicates a conversion was attempted against a
// currency that is disabled.
var ErrInactiveCurrency = errors.New("currency is inactive")

// ErrStorageUnavailable indicates the persistence layer failed.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
