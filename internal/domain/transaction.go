package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType encodes the direction of a money movement. The numeric
// values are part of the persisted format.
type TransactionType int

const (
	TransactionTypeDeposit    TransactionType = 1
	TransactionTypeWithdrawal TransactionType = 2
)

// Label returns the human-readable export label for the type. The second
// return value is false for unknown type codes.
func (t TransactionType) Label() (string, bool) {
	switch t {
	case TransactionTypeDeposit:
		return "DEPOSIT", true
	case TransactionTypeWithdrawal:
		return "WITHDRAW", true
	default:
		return "", false
	}
}

// Transaction is an immutable record of a single balance mutation. It is
// created once inside the same database transaction as the mutation and
// never updated or deleted afterwards.
type Transaction struct {
	ID           string
	AccountID    string
	Type         TransactionType
	Amount       decimal.Decimal
	Timestamp    time.Time
	BalanceAfter decimal.Decimal
}

// TransactionFilter is the query specification for statement reads. From
// and To bound the transaction's calendar date inclusively; both are
// optional and only applied when set together with a valid range.
type TransactionFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
}
