package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func seedTransactions(repo *mocks.MockTransactionRepository) {
	days := []int{1, 5, 10, 20}
	for i, day := range days {
		repo.Add(&domain.Transaction{
			ID:           "txn-" + string(rune('a'+i)),
			AccountID:    "acc-1",
			Type:         domain.TransactionTypeDeposit,
			Amount:       decimal.NewFromInt(int64(10 * (i + 1))),
			Timestamp:    time.Date(2024, 6, day, 12, 0, 0, 0, time.UTC),
			BalanceAfter: decimal.NewFromInt(int64(10 * (i + 1))),
		})
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestStatementUseCase_Statement_DateRangeInclusive(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	seedTransactions(txnRepo)

	uc := usecase.NewStatementUseCase(txnRepo, nil, zerolog.Nop())

	txns, err := uc.Statement(context.Background(), usecase.StatementInput{
		AccountID: "acc-1",
		From:      datePtr(2024, 6, 5),
		To:        datePtr(2024, 6, 10),
	})

	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "txn-b", txns[0].ID)
	assert.Equal(t, "txn-c", txns[1].ID)
}

func TestStatementUseCase_Statement_NoRangeReturnsAll(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	seedTransactions(txnRepo)

	uc := usecase.NewStatementUseCase(txnRepo, nil, zerolog.Nop())

	txns, err := uc.Statement(context.Background(), usecase.StatementInput{AccountID: "acc-1"})

	require.NoError(t, err)
	assert.Len(t, txns, 4)
}

func TestStatementUseCase_Statement_Restartable(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	seedTransactions(txnRepo)

	uc := usecase.NewStatementUseCase(txnRepo, mocks.NewMockCache(), zerolog.Nop())

	input := usecase.StatementInput{
		AccountID: "acc-1",
		From:      datePtr(2024, 6, 1),
		To:        datePtr(2024, 6, 30),
	}

	first, err := uc.Statement(context.Background(), input)
	require.NoError(t, err)

	second, err := uc.Statement(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.True(t, first[i].Amount.Equal(second[i].Amount))
	}
}

func TestStatementUseCase_Statement_RejectsInvertedRange(t *testing.T) {
	uc := usecase.NewStatementUseCase(mocks.NewMockTransactionRepository(), nil, zerolog.Nop())

	_, err := uc.Statement(context.Background(), usecase.StatementInput{
		AccountID: "acc-1",
		From:      datePtr(2024, 6, 10),
		To:        datePtr(2024, 6, 5),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestStatementUseCase_ExportCSV(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	ts := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	txnRepo.Add(&domain.Transaction{
		ID: "t1", AccountID: "acc-1", Type: domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(10), Timestamp: ts, BalanceAfter: decimal.NewFromInt(10),
	})
	txnRepo.Add(&domain.Transaction{
		ID: "t2", AccountID: "acc-1", Type: domain.TransactionTypeWithdrawal,
		Amount: decimal.NewFromInt(5), Timestamp: ts.Add(time.Hour), BalanceAfter: decimal.NewFromInt(5),
	})
	txnRepo.Add(&domain.Transaction{
		ID: "t3", AccountID: "acc-1", Type: domain.TransactionType(9),
		Amount: decimal.NewFromInt(1), Timestamp: ts.Add(2 * time.Hour), BalanceAfter: decimal.NewFromInt(4),
	})

	uc := usecase.NewStatementUseCase(txnRepo, nil, zerolog.Nop())

	var buf bytes.Buffer
	written, skipped, err := uc.ExportCSV(context.Background(), "acc-1", &buf)

	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Equal(t, 1, skipped)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "TRANSACTION TYPE,DATE,AMOUNT,BALANCE AFTER TRANSACTION", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "DEPOSIT,"))
	assert.True(t, strings.HasSuffix(lines[1], ",10,10"))
	assert.True(t, strings.HasPrefix(lines[2], "WITHDRAW,"))
	assert.True(t, strings.HasSuffix(lines[2], ",5,5"))
	assert.NotContains(t, buf.String(), ",1,4")
}

func TestStatementUseCase_ExportCSV_EmptyHistory(t *testing.T) {
	uc := usecase.NewStatementUseCase(mocks.NewMockTransactionRepository(), nil, zerolog.Nop())

	var buf bytes.Buffer
	written, skipped, err := uc.ExportCSV(context.Background(), "acc-1", &buf)

	require.NoError(t, err)
	assert.Zero(t, written)
	assert.Zero(t, skipped)
	assert.Equal(t, "TRANSACTION TYPE,DATE,AMOUNT,BALANCE AFTER TRANSACTION\n", buf.String())
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 15, 0, time.UTC)
	got := usecase.ExportFileName(now)
	assert.Equal(t, "statement2024-06-01T09-30-15.csv", got)
}
