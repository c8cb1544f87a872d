package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rio1412/acoount251013kakei/internal/authz"
	"github.com/rio1412/acoount251013kakei/internal/models"
	"github.com/rio1412/acoount251013kakei/internal/summary"
)

type createTransactionRequest struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Note     string    `json:"note"`
	Type     string    `json:"type"`
}

type transactionResponse struct {
	ID       string                 `json:"id"`
	UserID   string                 `json:"user_id"`
	Date     time.Time              `json:"date"`
	Category string                 `json:"category"`
	Amount   float64                `json:"amount"`
	Note     string                 `json:"note"`
	Type     models.TransactionType `json:"type"`
}

func toTransactionResponse(tx *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:       tx.ID,
		UserID:   tx.UserID,
		Date:     tx.Date,
		Category: tx.Category,
		Amount:   tx.Amount,
		Note:     tx.Note,
		Type:     tx.Type,
	}
}

// CreateTransaction records a new income or expense entry owned by the
// session's user.
func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request, user *models.User) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Type == "" {
		req.Type = string(models.TypeExpense)
	}
	txType := models.TransactionType(req.Type)
	switch {
	case req.Category == "":
		writeError(w, http.StatusBadRequest, "category is required")
		return
	case req.Date.IsZero():
		writeError(w, http.StatusBadRequest, "date is required")
		return
	case req.Amount < 0:
		writeError(w, http.StatusBadRequest, "amount must not be negative")
		return
	case !txType.Valid():
		writeError(w, http.StatusBadRequest, "type must be income or expense")
		return
	}

	tx := &models.Transaction{
		UserID:   user.ID,
		Date:     req.Date,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
		Type:     txType,
	}
	if err := h.store.CreateTransaction(r.Context(), tx); err != nil {
		h.logger.Error("Failed to create transaction", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.recordLog(r.Context(), user.ID, fmt.Sprintf("ADD_TX id=%s type=%s", tx.ID, tx.Type))
	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

// ListTransactions returns the transactions the session's user may see:
// everything for admins, own records otherwise, newest date first.
func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request, user *models.User) {
	txs, err := h.store.ListTransactions(r.Context(), authz.TransactionScope(user))
	if err != nil {
		h.logger.Error("Failed to list transactions", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]transactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteTransaction removes a transaction if the session's user owns it or
// is an admin.
func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request, user *models.User) {
	id := r.PathValue("id")

	tx, err := h.store.GetTransaction(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get transaction", "tx_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if tx == nil {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if !authz.CanDeleteTransaction(user, tx) {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	deleted, err := h.store.DeleteTransaction(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to delete transaction", "tx_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		// Raced with another delete between the lookup and here
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	h.recordLog(r.Context(), user.ID, fmt.Sprintf("DELETE_TX id=%s", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

type summaryResponse struct {
	IncomeTotal  float64                   `json:"income_total"`
	ExpenseTotal float64                   `json:"expense_total"`
	Balance      float64                   `json:"balance"`
	Categories   []summaryCategoryResponse `json:"categories"`
}

type summaryCategoryResponse struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary aggregates the session-visible transactions into income and
// expense totals plus a per-category expense breakdown.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request, user *models.User) {
	txs, err := h.store.ListTransactions(r.Context(), authz.TransactionScope(user))
	if err != nil {
		h.logger.Error("Failed to list transactions", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	agg := summary.Compute(txs)
	resp := summaryResponse{
		IncomeTotal:  agg.IncomeTotal,
		ExpenseTotal: agg.ExpenseTotal,
		Balance:      agg.Balance,
		Categories:   make([]summaryCategoryResponse, 0, len(agg.Categories)),
	}
	for _, ct := range agg.Categories {
		resp.Categories = append(resp.Categories, summaryCategoryResponse{
			Category:   ct.Category,
			Total:      ct.Total,
			Count:      ct.Count,
			Percentage: ct.Percentage,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
