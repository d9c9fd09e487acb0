package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxops/exchange_backoffice/internal/apperrors"
	"github.com/fxops/exchange_backoffice/internal/core/domain"
	portsrepo "github.com/fxops/exchange_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the exchange rate repository
// using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

const rateColumns = `exchange_rate_id, currency_id, rate_to_usd, is_active, created_by, created_at, updated_at`

func scanRate(row pgx.Row) (domain.ExchangeRate, error) {
	var r domain.ExchangeRate
	err := row.Scan(
		&r.ExchangeRateID,
		&r.CurrencyID,
		&r.RateToUSD,
		&r.IsActive,
		&r.CreatedBy,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// InsertRate persists a new exchange rate. The unique index on
// currency_id enforces one rate per currency against concurrent writes.
func (r *PgxExchangeRateRepository) InsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (exchange_rate_id, currency_id, rate_to_usd, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		rate.ExchangeRateID,
		rate.CurrencyID,
		rate.RateToUSD,
		rate.IsActive,
		rate.CreatedBy,
		rate.CreatedAt,
		rate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicateRate, rate.CurrencyID)
		}
		return storageErr("failed to insert rate for currency "+rate.CurrencyID, err)
	}
	return nil
}

// FindRateByID retrieves an exchange rate by its identifier.
func (r *PgxExchangeRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`
	rate, err := scanRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: exchange rate %s", apperrors.ErrNotFound, rateID)
		}
		return nil, storageErr("failed to find rate by id "+rateID, err)
	}
	return &rate, nil
}

// FindRateByCurrencyID retrieves the single rate owned by a currency.
func (r *PgxExchangeRateRepository) FindRateByCurrencyID(ctx context.Context, currencyID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE currency_id = $1;`
	rate, err := scanRate(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rate for currency %s", apperrors.ErrNotFound, currencyID)
		}
		return nil, storageErr("failed to find rate for currency "+currencyID, err)
	}
	return &rate, nil
}

// ListRates retrieves exchange rates ordered by currency id ascending.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY currency_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("failed to query rates", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRate, error) {
		return scanRate(row)
	})
	if err != nil {
		return nil, storageErr("failed to scan rates", err)
	}
	return rates, nil
}

// UpdateRate persists changes to an existing exchange rate.
func (r *PgxExchangeRateRepository) UpdateRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		UPDATE exchange_rates
		SET rate_to_usd = $2, is_active = $3, updated_at = $4
		WHERE exchange_rate_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		rate.ExchangeRateID,
		rate.RateToUSD,
		rate.IsActive,
		rate.UpdatedAt,
	)
	if err != nil {
		return storageErr("failed to update rate "+rate.ExchangeRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exchange rate %s", apperrors.ErrNotFound, rate.ExchangeRateID)
	}
	return nil
}

// DeleteRate removes an exchange rate.
func (r *PgxExchangeRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM exchange_rates WHERE exchange_rate_id = $1;`, rateID)
	if err != nil {
		return storageErr("failed to delete rate "+rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exchange rate %s", apperrors.ErrNotFound, rateID)
	}
	return nil
}
