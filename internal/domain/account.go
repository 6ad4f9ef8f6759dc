package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType describes a savings product offering. The interest frequency
// controls when a freshly funded account becomes interest-eligible.
type AccountType struct {
	ID                          string
	Name                        string
	InterestCalculationsPerYear int
}

// MonthsToFirstInterest returns the number of calendar months between an
// account's first deposit and the start of interest accrual. 12 is divided
// using integer division; a frequency that does not evenly divide 12 loses
// the remainder.
func (t AccountType) MonthsToFirstInterest() int {
	return 12 / t.InterestCalculationsPerYear
}

// Account represents a customer account holding a running balance.
type Account struct {
	ID                 string
	UserID             string
	AccountType        AccountType
	Balance            decimal.Decimal
	AllowOverdraft     bool
	InitialDepositDate *time.Time
	InterestStartDate  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Funded reports whether the account has ever received a deposit.
func (a *Account) Funded() bool {
	return a.InitialDepositDate != nil
}

// ApplyDeposit credits amount to the balance and, on the first-ever deposit,
// seeds the interest-eligibility dates. InitialDepositDate and
// InterestStartDate are set together exactly once; later deposits never
// touch them. Returns the new balance.
func (a *Account) ApplyDeposit(amount decimal.Decimal, now time.Time) decimal.Decimal {
	if !a.Funded() {
		start := now.AddDate(0, a.AccountType.MonthsToFirstInterest(), 0)
		a.InitialDepositDate = &now
		a.InterestStartDate = &start
	}

	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = now

	return a.Balance
}

// ValidateWithdrawal checks if amount can be withdrawn under the account's
// overdraft policy.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	newBalance := a.Balance.Sub(amount)
	if !a.AllowOverdraft && newBalance.IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyWithdrawal debits amount from the balance. Callers are expected to
// run ValidateWithdrawal first; the balance may go negative when the account
// allows overdraft. Returns the new balance.
func (a *Account) ApplyWithdrawal(amount decimal.Decimal, now time.Time) decimal.Decimal {
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = now

	return a.Balance
}
