package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create appends a transaction record inside the caller's database
// transaction, alongside the balance update it reflects.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (id, account_id, transaction_type, amount, ts, balance_after)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		txn.ID,
		txn.AccountID,
		int(txn.Type),
		decimalToNumeric(txn.Amount),
		timeToPgTimestamptz(txn.Timestamp),
		decimalToNumeric(txn.BalanceAfter),
	)

	return err
}

// List returns distinct records matching the filter, ordered by timestamp
// ascending. The optional bounds are inclusive over the transaction's
// calendar date.
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	query := `
		SELECT DISTINCT id, account_id, transaction_type, amount, ts, balance_after
		FROM transactions WHERE account_id = $1`
	args := []any{filter.AccountID}

	if filter.From != nil {
		args = append(args, filter.From.UTC())
		query += ` AND ts::date >= $2::date`
	}
	if filter.To != nil {
		args = append(args, filter.To.UTC())
		if filter.From != nil {
			query += ` AND ts::date <= $3::date`
		} else {
			query += ` AND ts::date <= $2::date`
		}
	}

	query += ` ORDER BY ts ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListByAccount returns the account's full history in insertion order. The
// export path reads through here, unfiltered.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_id, transaction_type, amount, ts, balance_after
		FROM transactions WHERE account_id = $1 ORDER BY id`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txns []*domain.Transaction

	for rows.Next() {
		var (
			txn          domain.Transaction
			txnType      int
			amount       pgtype.Numeric
			ts           pgtype.Timestamptz
			balanceAfter pgtype.Numeric
		)

		if err := rows.Scan(&txn.ID, &txn.AccountID, &txnType, &amount, &ts, &balanceAfter); err != nil {
			return nil, err
		}

		txn.Type = domain.TransactionType(txnType)
		txn.Amount = numericToDecimal(amount)
		txn.Timestamp = ts.Time
		txn.BalanceAfter = numericToDecimal(balanceAfter)

		txns = append(txns, &txn)
	}

	return txns, rows.Err()
}
