package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// UserResponse represents an account holder in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts domain user to response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse represents a successful login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// AccountTypeResponse represents a savings product in API responses.
type AccountTypeResponse struct {
	ID                          string `json:"id"`
	Name                        string `json:"name"`
	InterestCalculationsPerYear int    `json:"interest_calculations_per_year"`
}

// AccountTypeFromDomain converts domain account type to response.
func AccountTypeFromDomain(t *domain.AccountType) *AccountTypeResponse {
	return &AccountTypeResponse{
		ID:                          t.ID,
		Name:                        t.Name,
		InterestCalculationsPerYear: t.InterestCalculationsPerYear,
	}
}

// AccountTypesFromDomain converts domain account types to responses.
func AccountTypesFromDomain(types []*domain.AccountType) []*AccountTypeResponse {
	result := make([]*AccountTypeResponse, len(types))
	for i, t := range types {
		result[i] = AccountTypeFromDomain(t)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	AccountType        string          `json:"account_type"`
	Balance            decimal.Decimal `json:"balance"`
	AllowOverdraft     bool            `json:"allow_overdraft"`
	InitialDepositDate *time.Time      `json:"initial_deposit_date,omitempty"`
	InterestStartDate  *time.Time      `json:"interest_start_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		AccountType:        a.AccountType.Name,
		Balance:            a.Balance,
		AllowOverdraft:     a.AllowOverdraft,
		InitialDepositDate: a.InitialDepositDate,
		InterestStartDate:  a.InterestStartDate,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Type         int             `json:"type"`
	TypeLabel    string          `json:"type_label,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	label, _ := t.Type.Label()
	return &TransactionResponse{
		ID:           t.ID,
		AccountID:    t.AccountID,
		Type:         int(t.Type),
		TypeLabel:    label,
		Amount:       t.Amount,
		Timestamp:    t.Timestamp,
		BalanceAfter: t.BalanceAfter,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// StatementResponse represents a date-filtered transaction report.
type StatementResponse struct {
	AccountID    string                 `json:"account_id"`
	From         *time.Time             `json:"from,omitempty"`
	To           *time.Time             `json:"to,omitempty"`
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int                    `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details []ValidationError `json:"details,omitempty"`
}
