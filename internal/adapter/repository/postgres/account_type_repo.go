package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
)

// AccountTypeRepository implements usecase.AccountTypeRepository.
type AccountTypeRepository struct {
	pool *pgxpool.Pool
}

// NewAccountTypeRepository creates a new AccountTypeRepository.
func NewAccountTypeRepository(pool *pgxpool.Pool) *AccountTypeRepository {
	return &AccountTypeRepository{pool: pool}
}

// GetByName retrieves an account type by product name.
func (r *AccountTypeRepository) GetByName(ctx context.Context, name string) (*domain.AccountType, error) {
	var t domain.AccountType

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, interest_calculations_per_year
		FROM account_types WHERE name = $1`, name,
	).Scan(&t.ID, &t.Name, &t.InterestCalculationsPerYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountTypeNotFound
		}

		return nil, err
	}

	return &t, nil
}

// List lists all account types.
func (r *AccountTypeRepository) List(ctx context.Context) ([]*domain.AccountType, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, interest_calculations_per_year
		FROM account_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*domain.AccountType
	for rows.Next() {
		var t domain.AccountType
		if err := rows.Scan(&t.ID, &t.Name, &t.InterestCalculationsPerYear); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}

	return types, rows.Err()
}
