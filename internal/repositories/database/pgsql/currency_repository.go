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

// PgxCurrencyRepository implements the currency repository using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_id, code, name, symbol, is_active, created_at, updated_at`

func scanCurrency(row pgx.Row) (domain.Currency, error) {
	var c domain.Currency
	err := row.Scan(
		&c.CurrencyID,
		&c.Code,
		&c.Name,
		&c.Symbol,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// InsertCurrency persists a new currency. The unique index on code is
// the backstop for concurrent creates racing the service-level check.
func (r *PgxCurrencyRepository) InsertCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (currency_id, code, name, symbol, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		currency.CurrencyID,
		currency.Code,
		currency.Name,
		currency.Symbol,
		currency.IsActive,
		currency.CreatedAt,
		currency.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: code %s", apperrors.ErrDuplicateCurrency, currency.Code)
		}
		return storageErr("failed to insert currency "+currency.Code, err)
	}
	return nil
}

// FindCurrencyByID retrieves a currency by its identifier.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1;`
	currency, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyID)
		}
		return nil, storageErr("failed to find currency by id "+currencyID, err)
	}
	return &currency, nil
}

// FindCurrencyByCode retrieves a currency by its uppercase code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`
	currency, err := scanCurrency(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency code %s", apperrors.ErrNotFound, code)
		}
		return nil, storageErr("failed to find currency by code "+code, err)
	}
	return &currency, nil
}

// ListCurrencies retrieves currencies ordered by code ascending.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("failed to query currencies", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, storageErr("failed to scan currencies", err)
	}
	return currencies, nil
}

// UpdateCurrency persists changes to an existing currency. The code
// column is never touched.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, is_active = $4, updated_at = $5
		WHERE currency_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		currency.CurrencyID,
		currency.Name,
		currency.Symbol,
		currency.IsActive,
		currency.UpdatedAt,
	)
	if err != nil {
		return storageErr("failed to update currency "+currency.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currency.CurrencyID)
	}
	return nil
}

// DeleteCurrency removes a currency and its exchange rate in a single
// transaction. The rate goes first so no orphaned rate can remain if
// the second delete fails.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM exchange_rates WHERE currency_id = $1;`, currencyID); err != nil {
		_ = r.Rollback(ctx, tx)
		return storageErr("failed to delete rate for currency "+currencyID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1;`, currencyID)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return storageErr("failed to delete currency "+currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		_ = r.Rollback(ctx, tx)
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyID)
	}

	return r.Commit(ctx, tx)
}
