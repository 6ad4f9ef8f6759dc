package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// LedgerUseCase applies deposits and withdrawals to an account and records
// the resulting transaction inside the same database transaction, so the
// running balance and the audit trail cannot drift.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	userRepo    UserRepository
	idGen       IDGenerator
	notifier    Notifier
	retrier     Retrier
	logger      zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	userRepo UserRepository,
	idGen IDGenerator,
	notifier Notifier,
	retrier Retrier,
	logger zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		userRepo:    userRepo,
		idGen:       idGen,
		notifier:    notifier,
		retrier:     retrier,
		logger:      logger,
	}
}

// MoneyMovementInput represents input for a deposit or withdrawal.
type MoneyMovementInput struct {
	AccountID string
	Amount    decimal.Decimal
}

// Deposit credits the amount to the account. On the account's first-ever
// deposit the interest-eligibility dates are seeded: the initial deposit
// date is set to now and the interest start date to now plus
// 12 / InterestCalculationsPerYear calendar months.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input MoneyMovementInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var (
		account *domain.Account
		txn     *domain.Transaction
	)

	op := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err = uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		newBalance := account.ApplyDeposit(input.Amount, now)

		if err := uc.accountRepo.UpdateDepositState(ctx, tx, account); err != nil {
			return err
		}

		txn = &domain.Transaction{
			ID:           uc.idGen.Generate(),
			AccountID:    account.ID,
			Type:         domain.TransactionTypeDeposit,
			Amount:       input.Amount,
			Timestamp:    now,
			BalanceAfter: newBalance,
		}

		if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if err := uc.retrier.Retry(ctx, op); err != nil {
		return nil, err
	}

	uc.notify(ctx, account, domain.NewDepositNotification, input.Amount)

	return txn, nil
}

// Withdraw debits the amount from the account. Without overdraft the
// withdrawal fails with ErrInsufficientFunds when it would take the balance
// negative; with overdraft enabled the balance is allowed to go negative.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input MoneyMovementInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var (
		account *domain.Account
		txn     *domain.Transaction
	)

	op := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err = uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
		if err != nil {
			return err
		}

		if err := account.ValidateWithdrawal(input.Amount); err != nil {
			return err
		}

		now := time.Now().UTC()
		newBalance := account.ApplyWithdrawal(input.Amount, now)

		if err := uc.accountRepo.UpdateBalance(ctx, tx, account); err != nil {
			return err
		}

		txn = &domain.Transaction{
			ID:           uc.idGen.Generate(),
			AccountID:    account.ID,
			Type:         domain.TransactionTypeWithdrawal,
			Amount:       input.Amount,
			Timestamp:    now,
			BalanceAfter: newBalance,
		}

		if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if err := uc.retrier.Retry(ctx, op); err != nil {
		return nil, err
	}

	uc.notify(ctx, account, domain.NewWithdrawalNotification, input.Amount)

	return txn, nil
}

// notify dispatches the post-commit notification. The balance mutation is
// already durable at this point; a notifier failure is logged and dropped,
// never surfaced to the caller.
func (uc *LedgerUseCase) notify(
	ctx context.Context,
	account *domain.Account,
	build func(recipient string, amount, balance decimal.Decimal) domain.Notification,
	amount decimal.Decimal,
) {
	holder, err := uc.userRepo.GetByID(ctx, account.UserID)
	if err != nil {
		uc.logger.Warn().Err(err).
			Str("account_id", account.ID).
			Msg("notification skipped: holder lookup failed")
		return
	}

	n := build(holder.Email, amount, account.Balance)
	if err := uc.notifier.Notify(ctx, n); err != nil {
		uc.logger.Warn().Err(err).
			Str("account_id", account.ID).
			Str("kind", n.Kind).
			Msg("notification dispatch failed")
	}
}
