package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Deposit(ctx context.Context, input usecase.MoneyMovementInput) (*domain.Transaction, error)
	Withdraw(ctx context.Context, input usecase.MoneyMovementInput) (*domain.Transaction, error)
}

// AccountGetter resolves accounts for ownership checks.
type AccountGetter interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}

// LedgerHandler handles deposit and withdrawal HTTP requests.
type LedgerHandler struct {
	ledgerUC  LedgerService
	accountUC AccountGetter
	metrics   *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler. Metrics are optional.
func NewLedgerHandler(ledgerUC LedgerService, accountUC AccountGetter, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC:  ledgerUC,
		accountUC: accountUC,
		metrics:   m,
	}
}

// Deposit credits money to the caller's account.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeMovement(w, r)
	if !ok {
		return
	}

	txn, err := h.ledgerUC.Deposit(r.Context(), input)
	if err != nil {
		h.countError(err)
		writeError(w, mapDomainError(err), "failed to deposit", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.DepositsCreated.Inc()
		h.metrics.TransactionAmount.WithLabelValues("deposit").Observe(txn.Amount.InexactFloat64())
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Withdraw debits money from the caller's account.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeMovement(w, r)
	if !ok {
		return
	}

	txn, err := h.ledgerUC.Withdraw(r.Context(), input)
	if err != nil {
		h.countError(err)
		writeError(w, mapDomainError(err), "failed to withdraw", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.WithdrawalsCreated.Inc()
		h.metrics.TransactionAmount.WithLabelValues("withdrawal").Observe(txn.Amount.InexactFloat64())
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// decodeMovement parses the request body and verifies the account belongs to
// the authenticated caller.
func (h *LedgerHandler) decodeMovement(w http.ResponseWriter, r *http.Request) (usecase.MoneyMovementInput, bool) {
	ac, ok := middleware.GetAuthContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return usecase.MoneyMovementInput{}, false
	}

	var req dto.MoneyMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return usecase.MoneyMovementInput{}, false
	}

	if errs := dto.ValidateRequest(&req); errs != nil {
		writeValidationError(w, errs)
		return usecase.MoneyMovementInput{}, false
	}

	account, err := h.accountUC.GetAccount(r.Context(), req.AccountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return usecase.MoneyMovementInput{}, false
	}

	if account.UserID != ac.UserID {
		writeError(w, http.StatusForbidden, "account does not belong to caller", "")
		return usecase.MoneyMovementInput{}, false
	}

	return req.ToUseCaseInput(), true
}

func (h *LedgerHandler) countError(err error) {
	if h.metrics == nil {
		return
	}

	errType := "internal"
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		errType = "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		errType = "invalid_amount"
	case errors.Is(err, domain.ErrAmountTooLarge):
		errType = "amount_too_large"
	case errors.Is(err, domain.ErrAccountNotFound):
		errType = "account_not_found"
	}

	h.metrics.TransactionErrors.WithLabelValues(errType).Inc()
}
