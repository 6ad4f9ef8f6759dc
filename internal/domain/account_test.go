package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAccount_ApplyDeposit_InterestBootstrap(t *testing.T) {
	tests := []struct {
		name                string
		calculationsPerYear int
		wantMonths          int
	}{
		{
			name:                "monthly interest",
			calculationsPerYear: 12,
			wantMonths:          1,
		},
		{
			name:                "quarterly interest",
			calculationsPerYear: 4,
			wantMonths:          3,
		},
		{
			name:                "semiannual interest",
			calculationsPerYear: 2,
			wantMonths:          6,
		},
		{
			name:                "frequency not dividing 12 truncates remainder",
			calculationsPerYear: 5,
			wantMonths:          2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
			acc := &Account{
				Balance: decimal.Zero,
				AccountType: AccountType{
					Name:                        "savings",
					InterestCalculationsPerYear: tt.calculationsPerYear,
				},
			}

			acc.ApplyDeposit(decimal.NewFromInt(100), now)

			if acc.InitialDepositDate == nil || !acc.InitialDepositDate.Equal(now) {
				t.Fatalf("expected initial deposit date %v, got %v", now, acc.InitialDepositDate)
			}

			wantStart := now.AddDate(0, tt.wantMonths, 0)
			if acc.InterestStartDate == nil || !acc.InterestStartDate.Equal(wantStart) {
				t.Fatalf("expected interest start %v, got %v", wantStart, acc.InterestStartDate)
			}
		})
	}
}

func TestAccount_ApplyDeposit_SecondDepositKeepsDates(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	acc := &Account{
		Balance:     decimal.Zero,
		AccountType: AccountType{InterestCalculationsPerYear: 4},
	}

	acc.ApplyDeposit(decimal.NewFromInt(100), first)
	initialDeposit := *acc.InitialDepositDate
	interestStart := *acc.InterestStartDate

	acc.ApplyDeposit(decimal.NewFromInt(50), first.AddDate(0, 2, 0))

	if !acc.InitialDepositDate.Equal(initialDeposit) {
		t.Errorf("second deposit changed initial deposit date: %v", acc.InitialDepositDate)
	}
	if !acc.InterestStartDate.Equal(interestStart) {
		t.Errorf("second deposit changed interest start date: %v", acc.InterestStartDate)
	}
	if !acc.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected balance 150, got %s", acc.Balance)
	}
}

func TestAccount_ApplyDeposit_Balance(t *testing.T) {
	acc := &Account{
		Balance:     decimal.NewFromInt(100),
		AccountType: AccountType{InterestCalculationsPerYear: 12},
	}

	got := acc.ApplyDeposit(decimal.NewFromInt(50), time.Now().UTC())

	if !got.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected new balance 150, got %s", got)
	}
	if !acc.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected account balance 150, got %s", acc.Balance)
	}
}

func TestAccount_ValidateWithdrawal(t *testing.T) {
	tests := []struct {
		name           string
		balance        decimal.Decimal
		amount         decimal.Decimal
		allowOverdraft bool
		expectError    bool
	}{
		{
			name:        "overdraft disabled - withdraw more than balance",
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(150),
			expectError: true,
		},
		{
			name:    "overdraft disabled - withdraw exact balance",
			balance: decimal.NewFromInt(100),
			amount:  decimal.NewFromInt(100),
		},
		{
			name:           "overdraft enabled - withdraw more than balance",
			balance:        decimal.NewFromInt(100),
			amount:         decimal.NewFromInt(150),
			allowOverdraft: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{
				Balance:        tt.balance,
				AllowOverdraft: tt.allowOverdraft,
			}

			err := acc.ValidateWithdrawal(tt.amount)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccount_ApplyWithdrawal_OverdraftGoesNegative(t *testing.T) {
	acc := &Account{
		Balance:        decimal.NewFromInt(100),
		AllowOverdraft: true,
	}

	got := acc.ApplyWithdrawal(decimal.NewFromInt(150), time.Now().UTC())

	if !got.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("expected balance -50, got %s", got)
	}
}

func TestTransactionType_Label(t *testing.T) {
	if label, ok := TransactionTypeDeposit.Label(); !ok || label != "DEPOSIT" {
		t.Errorf("deposit label = %q, ok = %v", label, ok)
	}
	if label, ok := TransactionTypeWithdrawal.Label(); !ok || label != "WITHDRAW" {
		t.Errorf("withdrawal label = %q, ok = %v", label, ok)
	}
	if _, ok := TransactionType(9).Label(); ok {
		t.Error("expected unknown type code to have no label")
	}
}
