// Package handlers implements the HTTP API: authentication, transactions,
// CSV export, summaries, and admin user management.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rio1412/acoount251013kakei/internal/auth"
	"github.com/rio1412/acoount251013kakei/internal/models"
	"github.com/rio1412/acoount251013kakei/internal/storage"
)

// TokenCookieName is the name of the session cookie holding the signed
// token. The cookie is HttpOnly and SameSite so client script can't read
// it and it only rides along on matching-origin requests.
const TokenCookieName = "token"

// Handlers holds dependencies for the HTTP handlers.
type Handlers struct {
	store         storage.Store
	tokens        *auth.TokenService
	hasher        auth.Hasher
	secureCookies bool
	logger        *slog.Logger
}

// New creates the handler set.
func New(store storage.Store, tokens *auth.TokenService, hasher auth.Hasher, secureCookies bool, logger *slog.Logger) *Handlers {
	return &Handlers{
		store:         store,
		tokens:        tokens,
		hasher:        hasher,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Register wires all API routes onto the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.requireSession(h.Logout))

	mux.HandleFunc("POST /api/transactions", h.requireSession(h.CreateTransaction))
	mux.HandleFunc("GET /api/transactions", h.requireSession(h.ListTransactions))
	mux.HandleFunc("GET /api/transactions/csv", h.requireSession(h.ExportCSV))
	mux.HandleFunc("GET /api/transactions/summary", h.requireSession(h.Summary))
	mux.HandleFunc("DELETE /api/transactions/{id}", h.requireSession(h.DeleteTransaction))

	mux.HandleFunc("GET /api/users", h.requireSession(h.ListUsers))
	mux.HandleFunc("POST /api/users", h.requireSession(h.CreateUser))
	mux.HandleFunc("GET /api/logs", h.requireSession(h.ListLogs))
}

// sessionHandler is a handler that runs with a resolved session user.
type sessionHandler func(w http.ResponseWriter, r *http.Request, user *models.User)

// requireSession resolves the session cookie before calling next.
// Every failure mode (no cookie, bad signature, expired token, or a subject
// that no longer resolves to a user) collapses into the same 401 so the
// response never reveals which check failed.
func (h *Handlers) requireSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.resolveSession(r)
		if err != nil {
			h.logger.Debug("Session resolution failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next(w, r, user)
	}
}

// resolveSession verifies the token cookie and loads the session's user.
func (h *Handlers) resolveSession(r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return nil, auth.ErrMissingToken
	}

	subject, err := h.tokens.Verify(cookie.Value)
	if err != nil {
		return nil, err
	}

	user, err := h.store.GetUserByID(r.Context(), subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Valid token for a user that no longer exists
		return nil, auth.ErrTokenInvalid
	}

	return user, nil
}

// recordLog appends an audit log entry. Log failures never abort the
// operation that triggered them; the audit trail is best-effort.
func (h *Handlers) recordLog(ctx context.Context, userID, action string) {
	if err := h.store.AppendLog(ctx, userID, action); err != nil {
		h.logger.Warn("Failed to record audit log",
			"user_id", userID,
			"action", action,
			"error", err,
		)
	}
}
