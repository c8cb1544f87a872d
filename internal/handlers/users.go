package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rio1412/acoount251013kakei/internal/auth"
	"github.com/rio1412/acoount251013kakei/internal/authz"
	"github.com/rio1412/acoount251013kakei/internal/models"
	"github.com/rio1412/acoount251013kakei/internal/storage"
)

type userResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListUsers returns all user accounts. Admin only.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request, actor *models.User) {
	if !authz.CanManageUsers(actor) {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse{
			ID:       users[i].ID,
			Username: users[i].Username,
			Role:     users[i].Role,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateUser registers a new account with the given role. Admin only.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request, actor *models.User) {
	if !authz.CanManageUsers(actor) {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Role == "" {
		req.Role = string(models.RoleUser)
	}
	role := models.Role(req.Role)

	switch {
	case req.Username == "":
		writeError(w, http.StatusBadRequest, "username is required")
		return
	case !role.Valid():
		writeError(w, http.StatusBadRequest, "role must be user or admin")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	digest, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: digest,
		Role:         role,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "Username already exists")
			return
		}
		h.logger.Error("Failed to create user", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.recordLog(r.Context(), actor.ID, fmt.Sprintf("CREATE_USER %s", user.Username))
	h.logger.Info("User created", "user_id", user.ID, "username", user.Username, "role", user.Role)

	writeJSON(w, http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

type logResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Timestamp int64  `json:"timestamp"`
}

// ListLogs returns the audit trail, newest first. Admin only.
func (h *Handlers) ListLogs(w http.ResponseWriter, r *http.Request, actor *models.User) {
	if !authz.CanManageUsers(actor) {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	logs, err := h.store.ListLogs(r.Context())
	if err != nil {
		h.logger.Error("Failed to list logs", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]logResponse, 0, len(logs))
	for i := range logs {
		out = append(out, logResponse{
			ID:        logs[i].ID,
			UserID:    logs[i].UserID,
			Action:    logs[i].Action,
			Timestamp: logs[i].Timestamp,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
