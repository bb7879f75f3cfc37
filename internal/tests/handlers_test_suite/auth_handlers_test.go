package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func TestLoginHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name       string
		body       string
		expectCode int
	}{
		{"valid", `{"username":"admin","password":"secret"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"root","password":"secret"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest},
		{"malformed", `{"username":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectCode {
				t.Fatalf("expected status %d, got %d", tt.expectCode, w.Code)
			}
			if tt.expectCode != http.StatusOK {
				return
			}
			var resp handler.LoginResult
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if _, err := tokens.ParseToken(resp.Token); err != nil {
				t.Errorf("issued token does not verify: %v", err)
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	w := get(newRouter(), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestSwaggerServed(t *testing.T) {
	w := get(newRouter(), "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"/api/products/{id}"`)) {
		t.Error("expected product routes in swagger document")
	}
}
