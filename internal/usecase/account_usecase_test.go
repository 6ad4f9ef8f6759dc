package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func newAccountFixture() (*mocks.MockAccountRepository, *mocks.MockAccountTypeRepository, *usecase.AccountUseCase) {
	accRepo := mocks.NewMockAccountRepository()
	typeRepo := mocks.NewMockAccountTypeRepository()
	typeRepo.Add(&domain.AccountType{ID: "at-1", Name: "savings", InterestCalculationsPerYear: 4})

	uc := usecase.NewAccountUseCase(accRepo, typeRepo, mocks.NewMockIDGenerator())
	return accRepo, typeRepo, uc
}

func TestAccountUseCase_OpenAccount(t *testing.T) {
	_, _, uc := newAccountFixture()

	account, err := uc.OpenAccount(context.Background(), usecase.OpenAccountInput{
		UserID:      "user-1",
		AccountType: "savings",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !account.Balance.IsZero() {
		t.Errorf("expected zero opening balance, got %s", account.Balance)
	}
	if account.Funded() {
		t.Error("expected fresh account to be unfunded")
	}
	if account.AccountType.InterestCalculationsPerYear != 4 {
		t.Errorf("expected quarterly account type, got %d", account.AccountType.InterestCalculationsPerYear)
	}
}

func TestAccountUseCase_OpenAccount_UnknownType(t *testing.T) {
	_, _, uc := newAccountFixture()

	_, err := uc.OpenAccount(context.Background(), usecase.OpenAccountInput{
		UserID:      "user-1",
		AccountType: "premium",
	})
	if !errors.Is(err, domain.ErrAccountTypeNotFound) {
		t.Fatalf("expected ErrAccountTypeNotFound, got %v", err)
	}
}

func TestAccountUseCase_OpenAccount_OnePerUser(t *testing.T) {
	_, _, uc := newAccountFixture()

	ctx := context.Background()
	input := usecase.OpenAccountInput{UserID: "user-1", AccountType: "savings"}

	if _, err := uc.OpenAccount(ctx, input); err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	if _, err := uc.OpenAccount(ctx, input); !errors.Is(err, domain.ErrAccountAlreadyOpen) {
		t.Fatalf("expected ErrAccountAlreadyOpen, got %v", err)
	}
}

func TestAccountUseCase_GetAccountByUser(t *testing.T) {
	accRepo, _, uc := newAccountFixture()

	ctx := context.Background()
	opened, err := uc.OpenAccount(ctx, usecase.OpenAccountInput{UserID: "user-1", AccountType: "savings"})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	got, err := uc.GetAccountByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != opened.ID {
		t.Errorf("expected account %s, got %s", opened.ID, got.ID)
	}

	if _, err := accRepo.GetByUserID(ctx, "user-2"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for unknown user, got %v", err)
	}
}
