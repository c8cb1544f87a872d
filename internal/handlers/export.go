package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/rio1412/acoount251013kakei/internal/authz"
	"github.com/rio1412/acoount251013kakei/internal/models"
)

// ExportCSV streams the session-visible transactions as a CSV attachment.
// Scoping is identical to ListTransactions; the owning username is joined
// in and the type column carries the human-readable label.
func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request, user *models.User) {
	txs, err := h.store.ListTransactions(r.Context(), authz.TransactionScope(user))
	if err != nil {
		h.logger.Error("Failed to list transactions", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Resolve owner usernames in one query
	ownerIDs := make([]string, 0, len(txs))
	seen := make(map[string]bool)
	for i := range txs {
		if !seen[txs[i].UserID] {
			seen[txs[i].UserID] = true
			ownerIDs = append(ownerIDs, txs[i].UserID)
		}
	}
	owners, err := h.store.GetUsersByIDs(r.Context(), ownerIDs)
	if err != nil {
		h.logger.Error("Failed to resolve transaction owners", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=transactions.csv`)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "user_id", "username", "date", "category", "amount", "note", "type"}); err != nil {
		h.logger.Error("Failed to write CSV header", "error", err)
		return
	}

	for i := range txs {
		tx := &txs[i]
		username := ""
		if owner, ok := owners[tx.UserID]; ok {
			username = owner.Username
		}
		record := []string{
			tx.ID,
			tx.UserID,
			username,
			tx.Date.Format(time.RFC3339),
			tx.Category,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.Note,
			tx.Type.Label(),
		}
		if err := cw.Write(record); err != nil {
			h.logger.Error("Failed to write CSV record", "tx_id", tx.ID, "error", err)
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("Failed to flush CSV", "error", err)
	}
}
