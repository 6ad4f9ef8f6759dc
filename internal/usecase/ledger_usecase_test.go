package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func newLedgerFixture() (*mocks.MockAccountRepository, *mocks.MockTransactionRepository, *mocks.MockUserRepository, *mocks.MockNotifier, *usecase.LedgerUseCase) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	userRepo := mocks.NewMockUserRepository()
	notifier := mocks.NewMockNotifier()

	uc := usecase.NewLedgerUseCase(
		mocks.NewMockTransactionManager(),
		accRepo,
		txnRepo,
		userRepo,
		mocks.NewMockIDGenerator(),
		notifier,
		mocks.NewMockRetrier(),
		zerolog.Nop(),
	)

	return accRepo, txnRepo, userRepo, notifier, uc
}

func quarterlyAccount(balance int64) *domain.Account {
	return &domain.Account{
		ID:      "acc-1",
		UserID:  "user-1",
		Balance: decimal.NewFromInt(balance),
		AccountType: domain.AccountType{
			Name:                        "savings",
			InterestCalculationsPerYear: 4,
		},
	}
}

func TestLedgerUseCase_Deposit_FirstDepositSeedsInterestDates(t *testing.T) {
	accRepo, txnRepo, userRepo, notifier, uc := newLedgerFixture()

	account := quarterlyAccount(100)
	accRepo.Add(account)
	userRepo.Add(&domain.User{ID: "user-1", Email: "holder@example.com"})

	before := time.Now().UTC()
	txn, err := uc.Deposit(context.Background(), usecase.MoneyMovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(50),
	})
	after := time.Now().UTC()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !account.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected balance 150, got %s", account.Balance)
	}
	if !txn.BalanceAfter.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected BalanceAfter 150, got %s", txn.BalanceAfter)
	}
	if txn.Type != domain.TransactionTypeDeposit {
		t.Errorf("expected deposit type, got %d", txn.Type)
	}

	if account.InitialDepositDate == nil {
		t.Fatal("expected initial deposit date to be set")
	}
	if account.InitialDepositDate.Before(before) || account.InitialDepositDate.After(after) {
		t.Errorf("initial deposit date %v outside call window", account.InitialDepositDate)
	}

	// 12 / 4 = 3 calendar months to the first interest calculation.
	wantStart := account.InitialDepositDate.AddDate(0, 3, 0)
	if account.InterestStartDate == nil || !account.InterestStartDate.Equal(wantStart) {
		t.Errorf("expected interest start %v, got %v", wantStart, account.InterestStartDate)
	}

	if got := len(txnRepo.Created()); got != 1 {
		t.Errorf("expected 1 recorded transaction, got %d", got)
	}

	sent := notifier.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sent))
	}
	if sent[0].Recipient != "holder@example.com" {
		t.Errorf("expected notification for holder, got %s", sent[0].Recipient)
	}
	if sent[0].Kind != domain.NotificationKindDeposit {
		t.Errorf("expected deposit notification, got %s", sent[0].Kind)
	}
}

func TestLedgerUseCase_Deposit_SecondDepositKeepsDates(t *testing.T) {
	accRepo, _, userRepo, _, uc := newLedgerFixture()

	account := quarterlyAccount(0)
	accRepo.Add(account)
	userRepo.Add(&domain.User{ID: "user-1", Email: "holder@example.com"})

	ctx := context.Background()
	if _, err := uc.Deposit(ctx, usecase.MoneyMovementInput{AccountID: "acc-1", Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("first deposit failed: %v", err)
	}

	initialDeposit := *account.InitialDepositDate
	interestStart := *account.InterestStartDate

	if _, err := uc.Deposit(ctx, usecase.MoneyMovementInput{AccountID: "acc-1", Amount: decimal.NewFromInt(25)}); err != nil {
		t.Fatalf("second deposit failed: %v", err)
	}

	if !account.InitialDepositDate.Equal(initialDeposit) {
		t.Error("second deposit changed initial deposit date")
	}
	if !account.InterestStartDate.Equal(interestStart) {
		t.Error("second deposit changed interest start date")
	}
	if !account.Balance.Equal(decimal.NewFromInt(125)) {
		t.Errorf("expected balance 125, got %s", account.Balance)
	}
}

func TestLedgerUseCase_Deposit_RejectsNonPositiveAmount(t *testing.T) {
	accRepo, txnRepo, _, _, uc := newLedgerFixture()
	accRepo.Add(quarterlyAccount(100))

	_, err := uc.Deposit(context.Background(), usecase.MoneyMovementInput{
		AccountID: "acc-1",
		Amount:    decimal.Zero,
	})

	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if len(txnRepo.Created()) != 0 {
		t.Error("expected no transaction to be recorded")
	}
}

func TestLedgerUseCase_Withdraw_InsufficientFunds(t *testing.T) {
	accRepo, txnRepo, _, notifier, uc := newLedgerFixture()

	account := quarterlyAccount(100)
	accRepo.Add(account)

	_, err := uc.Withdraw(context.Background(), usecase.MoneyMovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(150),
	})

	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance unchanged at 100, got %s", account.Balance)
	}
	if len(txnRepo.Created()) != 0 {
		t.Error("expected no transaction to be recorded")
	}
	if len(notifier.Sent()) != 0 {
		t.Error("expected no notification to be sent")
	}
}

func TestLedgerUseCase_Withdraw_OverdraftAllowsNegativeBalance(t *testing.T) {
	accRepo, _, userRepo, _, uc := newLedgerFixture()

	account := quarterlyAccount(100)
	account.AllowOverdraft = true
	accRepo.Add(account)
	userRepo.Add(&domain.User{ID: "user-1", Email: "holder@example.com"})

	txn, err := uc.Withdraw(context.Background(), usecase.MoneyMovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(150),
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("expected balance -50, got %s", account.Balance)
	}
	if !txn.BalanceAfter.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("expected BalanceAfter -50, got %s", txn.BalanceAfter)
	}
}

func TestLedgerUseCase_Withdraw_AccountNotFound(t *testing.T) {
	_, _, _, _, uc := newLedgerFixture()

	_, err := uc.Withdraw(context.Background(), usecase.MoneyMovementInput{
		AccountID: "missing",
		Amount:    decimal.NewFromInt(10),
	})

	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestLedgerUseCase_Deposit_NotifierFailureDoesNotFailOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	userRepo := mocks.NewMockUserRepository()

	account := quarterlyAccount(100)
	accRepo.Add(account)
	userRepo.Add(&domain.User{ID: "user-1", Email: "holder@example.com"})

	notifier := mocks.NewMockGomockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp unreachable"))

	uc := usecase.NewLedgerUseCase(
		mocks.NewMockTransactionManager(),
		accRepo,
		txnRepo,
		userRepo,
		mocks.NewMockIDGenerator(),
		notifier,
		mocks.NewMockRetrier(),
		zerolog.Nop(),
	)

	txn, err := uc.Deposit(context.Background(), usecase.MoneyMovementInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(50),
	})

	if err != nil {
		t.Fatalf("notifier failure must not fail the deposit: %v", err)
	}
	if txn == nil || !account.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected committed deposit, balance %s", account.Balance)
	}
}
