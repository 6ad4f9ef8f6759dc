package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// exportHeader is the fixed first row of a statement export.
var exportHeader = []string{"TRANSACTION TYPE", "DATE", "AMOUNT", "BALANCE AFTER TRANSACTION"}

// StatementUseCase serves the transaction report and its CSV export.
type StatementUseCase struct {
	txnRepo TransactionRepository
	cache   Cache
	logger  zerolog.Logger
}

// NewStatementUseCase creates a new StatementUseCase. The cache is optional;
// pass nil to always read through to the repository.
func NewStatementUseCase(txnRepo TransactionRepository, cache Cache, logger zerolog.Logger) *StatementUseCase {
	return &StatementUseCase{
		txnRepo: txnRepo,
		cache:   cache,
		logger:  logger,
	}
}

// StatementInput represents input for a statement read. From and To bound
// the transaction calendar date inclusively; both are optional.
type StatementInput struct {
	AccountID string
	From      *time.Time
	To        *time.Time
}

// Statement returns the account's transactions, narrowed to the optional
// inclusive date range, ordered by timestamp ascending. The read is pure:
// the same input yields the same sequence until new transactions land.
func (uc *StatementUseCase) Statement(ctx context.Context, input StatementInput) ([]*domain.Transaction, error) {
	if err := domain.ValidateDateRange(input.From, input.To); err != nil {
		return nil, err
	}

	key := statementCacheKey(input)
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil {
			var txns []*domain.Transaction
			if err := json.Unmarshal(cached, &txns); err == nil {
				return txns, nil
			}
		}
	}

	txns, err := uc.txnRepo.List(ctx, domain.TransactionFilter{
		AccountID: input.AccountID,
		From:      input.From,
		To:        input.To,
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(txns); err == nil {
			if err := uc.cache.Set(ctx, key, encoded, StatementCacheTTL); err != nil {
				uc.logger.Debug().Err(err).Msg("statement cache write failed")
			}
		}
	}

	return txns, nil
}

// ExportCSV writes the account's full transaction history to w as CSV: the
// fixed header followed by one row per transaction in retrieval order. The
// export ignores any report date-range selection. Rows with an unknown type
// code are skipped with a diagnostic and counted in the second return value.
func (uc *StatementUseCase) ExportCSV(ctx context.Context, accountID string, w io.Writer) (written, skipped int, err error) {
	txns, err := uc.txnRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return 0, 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, 0, err
	}

	for _, txn := range txns {
		label, ok := txn.Type.Label()
		if !ok {
			skipped++
			uc.logger.Warn().
				Str("transaction_id", txn.ID).
				Str("account_id", txn.AccountID).
				Int("type", int(txn.Type)).
				Msg("export skipped row with unknown transaction type")
			continue
		}

		row := []string{
			label,
			txn.Timestamp.String(),
			txn.Amount.String(),
			txn.BalanceAfter.String(),
		}
		if err := cw.Write(row); err != nil {
			return written, skipped, err
		}
		written++
	}

	cw.Flush()
	return written, skipped, cw.Error()
}

// ExportFileName builds the timestamped attachment name for a download.
func ExportFileName(now time.Time) string {
	return "statement" + now.UTC().Format("2006-01-02T15-04-05") + ".csv"
}

func statementCacheKey(input StatementInput) string {
	from, to := "-", "-"
	if input.From != nil {
		from = input.From.UTC().Format("2006-01-02")
	}
	if input.To != nil {
		to = input.To.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("statement:%s:%s:%s", input.AccountID, from, to)
}
