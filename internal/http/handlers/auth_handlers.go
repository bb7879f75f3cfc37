package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate the admin and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		WriteError(w, http.StatusNotFound, "login is disabled")
		return
	}

	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		WriteError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	token, err := h.auth.Login(creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("failed login", "username", creds.Username, "remote", r.RemoteAddr)
			WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("could not generate token", "error", err)
		WriteError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
