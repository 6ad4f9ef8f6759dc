package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

const accountColumns = `
	a.id, a.user_id, a.balance, a.allow_overdraft,
	a.initial_deposit_date, a.interest_start_date, a.created_at, a.updated_at,
	t.id, t.name, t.interest_calculations_per_year`

const accountFrom = ` FROM accounts a JOIN account_types t ON t.id = a.account_type_id`

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, user_id, account_type_id, balance, allow_overdraft, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID,
		account.UserID,
		account.AccountType.ID,
		decimalToNumeric(account.Balance),
		account.AllowOverdraft,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+accountColumns+accountFrom+` WHERE a.id = $1`, id)
	return scanAccount(row)
}

// GetByUserID retrieves the account owned by a user.
func (r *AccountRepository) GetByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+accountColumns+accountFrom+` WHERE a.user_id = $1`, userID)
	return scanAccount(row)
}

// GetByIDForUpdate retrieves an account by ID with a FOR UPDATE row lock.
// Concurrent deposits and withdrawals on the same account serialize here.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT`+accountColumns+accountFrom+` WHERE a.id = $1 FOR UPDATE OF a`, id)
	return scanAccount(row)
}

// UpdateDepositState persists the balance and the two interest bookkeeping
// dates after a deposit; no other account fields are written.
func (r *AccountRepository) UpdateDepositState(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		UPDATE accounts
		SET balance = $2, initial_deposit_date = $3, interest_start_date = $4, updated_at = $5
		WHERE id = $1`,
		account.ID,
		decimalToNumeric(account.Balance),
		timePtrToPgTimestamptz(account.InitialDepositDate),
		timePtrToPgTimestamptz(account.InterestStartDate),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// UpdateBalance persists the balance after a withdrawal.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		UPDATE accounts SET balance = $2, updated_at = $3 WHERE id = $1`,
		account.ID,
		decimalToNumeric(account.Balance),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account   domain.Account
		balance   pgtype.Numeric
		initial   pgtype.Timestamptz
		start     pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&balance,
		&account.AllowOverdraft,
		&initial,
		&start,
		&createdAt,
		&updatedAt,
		&account.AccountType.ID,
		&account.AccountType.Name,
		&account.AccountType.InterestCalculationsPerYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.Balance = numericToDecimal(balance)
	account.InitialDepositDate = pgTimestamptzToTimePtr(initial)
	account.InterestStartDate = pgTimestamptzToTimePtr(start)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgTimestamptzToTimePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	out := t.Time
	return &out
}
