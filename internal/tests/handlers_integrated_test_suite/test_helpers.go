//go:build integration

package handlers_integrated_test_suite

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	token       string
	productRepo *repo.PostgresProductRepository
	authService *auth.AuthService
	database    *sql.DB
)

func setupTestRepos(password string) {
	productRepo = repo.NewPostgresProductRepository(database)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	tokens := auth.NewTokenManager("integration-secret", 15*time.Minute)
	authService = auth.NewAuthService("admin", string(hash), tokens)
}

func newRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHandler(productRepo, authService, logger)
	return api.NewRouter(h, api.RouterOptions{Logger: logger})
}

func clearAllProducts() {
	if _, err := database.Exec(`TRUNCATE products RESTART IDENTITY`); err != nil {
		fmt.Println("error truncating products", err)
	}
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
