package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/views"
)

// SessionCookie holds the token issued by the login form. It authorizes the
// product pages only; the JSON API still requires a bearer token.
const SessionCookie = "catalog_session"

const defaultReturn = "/products"

// AccountLoginForm handles GET /account/login.
func (h *Handler) AccountLoginForm(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		http.NotFound(w, r)
		return
	}
	h.writeHTML(w, r, http.StatusOK, views.LoginPage(safeReturn(r.URL.Query().Get("return")), ""))
}

// AccountLogin handles POST /account/login. On success it sets the session
// cookie and redirects to the page that asked for credentials.
func (h *Handler) AccountLogin(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.writeHTML(w, r, http.StatusBadRequest, views.LoginPage(defaultReturn, "The form could not be read."))
		return
	}
	returnTo := safeReturn(r.PostForm.Get("return"))
	username := r.PostForm.Get("username")

	token, err := h.auth.Login(username, r.PostForm.Get("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("failed page login", "username", username, "remote", r.RemoteAddr)
			h.writeHTML(w, r, http.StatusUnauthorized, views.LoginPage(returnTo, "Invalid username or password."))
			return
		}
		h.logger.Error("could not generate token", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.auth.Tokens().TTL().Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// AccountLogout handles POST /account/logout.
func (h *Handler) AccountLogout(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		http.NotFound(w, r)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, defaultReturn, http.StatusSeeOther)
}

// safeReturn keeps post-login redirects on this site.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return defaultReturn
	}
	return target
}
