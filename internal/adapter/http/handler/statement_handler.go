package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Statement(ctx context.Context, input usecase.StatementInput) ([]*domain.Transaction, error)
	ExportCSV(ctx context.Context, accountID string, w io.Writer) (written, skipped int, err error)
}

// StatementHandler serves the transaction report and its CSV export.
type StatementHandler struct {
	statementUC StatementService
	accountUC   AccountGetter
	metrics     *metrics.Metrics
}

// NewStatementHandler creates a new StatementHandler. Metrics are optional.
func NewStatementHandler(statementUC StatementService, accountUC AccountGetter, m *metrics.Metrics) *StatementHandler {
	return &StatementHandler{
		statementUC: statementUC,
		accountUC:   accountUC,
		metrics:     m,
	}
}

// Report returns the caller's transactions, optionally narrowed to an
// inclusive from/to date range given as YYYY-MM-DD query parameters.
func (h *StatementHandler) Report(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.resolveAccount(w, r)
	if !ok {
		return
	}

	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}

	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	txns, err := h.statementUC.Statement(r.Context(), usecase.StatementInput{
		AccountID: accountID,
		From:      from,
		To:        to,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build report", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.StatementsGenerated.Inc()
	}

	writeJSON(w, http.StatusOK, dto.StatementResponse{
		AccountID:    accountID,
		From:         from,
		To:           to,
		Transactions: dto.TransactionsFromDomain(txns),
		Total:        len(txns),
	})
}

// Export streams the caller's full transaction history as a CSV download.
// The report date range does not apply here.
func (h *StatementHandler) Export(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.resolveAccount(w, r)
	if !ok {
		return
	}

	fileName := usecase.ExportFileName(time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, fileName))

	_, skipped, err := h.statementUC.ExportCSV(r.Context(), accountID, w)
	if err != nil {
		// Headers may already be out; nothing to do beyond logging upstream.
		return
	}

	if h.metrics != nil {
		h.metrics.StatementsExported.Inc()
		h.metrics.ExportRowsSkipped.Add(float64(skipped))
	}
}

// resolveAccount maps the authenticated caller to their account ID.
func (h *StatementHandler) resolveAccount(w http.ResponseWriter, r *http.Request) (string, bool) {
	ac, ok := middleware.GetAuthContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return "", false
	}

	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account_id", "")
		return "", false
	}

	account, err := h.accountUC.GetAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return "", false
	}

	if account.UserID != ac.UserID {
		writeError(w, http.StatusForbidden, "account does not belong to caller", "")
		return "", false
	}

	return accountID, true
}
