package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountUseCase handles account lifecycle operations.
type AccountUseCase struct {
	accountRepo     AccountRepository
	accountTypeRepo AccountTypeRepository
	idGen           IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, accountTypeRepo AccountTypeRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
		idGen:           idGen,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	UserID         string
	AccountType    string
	AllowOverdraft bool
}

// OpenAccount opens a new account for a user. One account per user; a
// second open attempt fails with ErrAccountAlreadyOpen.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	existing, err := uc.accountRepo.GetByUserID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAccountAlreadyOpen
	}

	accountType, err := uc.accountTypeRepo.GetByName(ctx, input.AccountType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:             uc.idGen.Generate(),
		UserID:         input.UserID,
		AccountType:    *accountType,
		Balance:        decimal.Zero,
		AllowOverdraft: input.AllowOverdraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByUser retrieves the account owned by a user.
func (uc *AccountUseCase) GetAccountByUser(ctx context.Context, userID string) (*domain.Account, error) {
	return uc.accountRepo.GetByUserID(ctx, userID)
}

// ListAccountTypes lists the available account products.
func (uc *AccountUseCase) ListAccountTypes(ctx context.Context) ([]*domain.AccountType, error) {
	return uc.accountTypeRepo.List(ctx)
}
