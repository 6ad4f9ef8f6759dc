package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Notification kinds
const (
	NotificationKindDeposit    = "transaction.deposit"
	NotificationKindWithdrawal = "transaction.withdrawal"
)

// Notification is an outbound message to the account holder describing a
// completed money movement.
type Notification struct {
	Kind      string
	Recipient string
	Subject   string
	Body      string
}

// NewDepositNotification builds the notice sent after a successful deposit.
func NewDepositNotification(recipient string, amount, balance decimal.Decimal) Notification {
	return Notification{
		Kind:      NotificationKindDeposit,
		Recipient: recipient,
		Subject:   "Deposit Money",
		Body: fmt.Sprintf(
			"A deposit of %s was credited to your account. Updated balance: %s.",
			amount, balance,
		),
	}
}

// NewWithdrawalNotification builds the notice sent after a successful
// withdrawal.
func NewWithdrawalNotification(recipient string, amount, balance decimal.Decimal) Notification {
	return Notification{
		Kind:      NotificationKindWithdrawal,
		Recipient: recipient,
		Subject:   "Withdraw Money",
		Body: fmt.Sprintf(
			"A withdrawal of %s was debited from your account. Updated balance: %s.",
			amount, balance,
		),
	}
}
