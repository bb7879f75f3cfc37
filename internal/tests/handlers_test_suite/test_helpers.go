package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	tokens      *auth.TokenManager
	authService *auth.AuthService
)

func init() {
	setupTestRepos("secret")
	r := newRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	tokens = auth.NewTokenManager("test-secret", 15*time.Minute)
	authService = auth.NewAuthService("admin", string(hash), tokens)
}

func newRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHandler(productRepo, authService, logger)
	return api.NewRouter(h, api.RouterOptions{Logger: logger})
}

func clearAllProducts() {
	productRepo.Clear()
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

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putProduct(r http.Handler, id int, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/products/%d", id), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// postForm submits form with the admin session cookie.
func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	return submitForm(r, path, form, sessionCookie())
}

// submitForm posts form with the given cookies only.
func submitForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// get requests path with the admin session cookie.
func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return getAs(r, path, sessionCookie())
}

func getAs(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: handler.SessionCookie, Value: token}
}

// seedProducts stores Kalem (id 1) and Defter (id 2).
func seedProducts() {
	productRepo.Create(context.Background(), models.Product{Name: "Kalem", Price: decimal.NewFromInt(10), Stock: 5, Color: "Blue"})
	productRepo.Create(context.Background(), models.Product{Name: "Defter", Price: decimal.RequireFromString("24.50"), Stock: 3, Color: "Red"})
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
