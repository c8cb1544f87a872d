package handlers

import (
	"net/http"

	"github.com/rio1412/acoount251013kakei/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Login checks the credentials and, on success, issues a session token in
// an HttpOnly cookie. Unknown username and wrong password produce the same
// response so the reply doesn't confirm account existence.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("Login lookup failed", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	ok, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		// A digest we can no longer parse is a server-side problem,
		// but the client still just sees a failed login.
		h.logger.Error("Password verification failed", "username", req.Username, "error", err)
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("Failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.Validity().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.recordLog(r.Context(), user.ID, "LOGIN")
	h.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)

	writeJSON(w, http.StatusOK, loginResponse{Username: user.Username, Role: user.Role})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, user *models.User) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	h.recordLog(r.Context(), user.ID, "LOGOUT")
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
