package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Laptop", Price: price("1500"), Stock: 1, Color: "Gray"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/products/1" {
		t.Errorf("expected Location /api/products/1, got %q", loc)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id != 1 {
		t.Errorf("expected id 1, got %d", resp.Id)
	}
	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if !resp.Price.Equal(price("1500")) {
		t.Errorf("expected price 1500, got %v", resp.Price)
	}
	if resp.Stock != 1 {
		t.Errorf("expected stock 1, got %v", resp.Stock)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and price",
			payload:        handler.ProductRequest{Name: "", Price: price("0")},
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", Price: price("100")},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Invalid price only",
			payload:        handler.ProductRequest{Name: "Mouse", Price: price("-5")},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative stock",
			payload:        handler.ProductRequest{Name: "Keyboard", Price: price("50"), Stock: -1},
			expectedErrors: []string{"Stock"},
		},
		{
			name:           "Color too long",
			payload:        handler.ProductRequest{Name: "Keyboard", Price: price("50"), Color: strings.Repeat("x", 51)},
			expectedErrors: []string{"Color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp handler.ValidationErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp.Errors {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}

	if all, _ := productRepo.GetAll(t.Context()); len(all) != 0 {
		t.Errorf("expected no products stored, got %d", len(all))
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing comma", `{"name": "Invalid" "price": 100}`},
		{"two values", `{"name": "A", "price": 1}{"name": "B", "price": 2}`},
		{"wrong type", `{"name": 5, "price": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(tt.body))
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := get(r, "/api/products")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}

	seedProducts()
	w = get(r, "/api/products")

	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Kalem" || products[1].Name != "Defter" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestGetProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	seedProducts()
	r := newRouter()

	tests := []struct {
		name       string
		path       string
		expectCode int
		expectName string
	}{
		{"existing", "/api/products/1", http.StatusOK, "Kalem"},
		{"second", "/api/products/2", http.StatusOK, "Defter"},
		{"zero id", "/api/products/0", http.StatusNotFound, ""},
		{"missing", "/api/products/99", http.StatusNotFound, ""},
		{"not a number", "/api/products/abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path)
			if w.Code != tt.expectCode {
				t.Fatalf("expected status %d, got %d", tt.expectCode, w.Code)
			}
			if tt.expectName == "" {
				return
			}
			var resp handler.ProductResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Name != tt.expectName {
				t.Errorf("expected name %q, got %q", tt.expectName, resp.Name)
			}
		})
	}
}

func TestPutProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	seedProducts()
	r := newRouter()

	t.Run("id mismatch", func(t *testing.T) {
		w := putProduct(r, 2, handler.ProductRequest{Id: 1, Name: "Kalem", Price: price("10")})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		p, _ := productRepo.GetByID(t.Context(), 1)
		if p.Name != "Kalem" {
			t.Errorf("product 1 should be unchanged, got %q", p.Name)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		w := putProduct(r, 42, handler.ProductRequest{Id: 42, Name: "Ghost", Price: price("1")})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		w := putProduct(r, 1, handler.ProductRequest{Id: 1, Name: "", Price: price("10")})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("replace", func(t *testing.T) {
		w := putProduct(r, 1, handler.ProductRequest{Id: 1, Name: "Kurşun Kalem", Price: price("12.75"), Stock: 9, Color: "Black"})
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", w.Body.String())
		}
		p, err := productRepo.GetByID(t.Context(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Kurşun Kalem" || !p.Price.Equal(price("12.75")) || p.Stock != 9 || p.Color != "Black" {
			t.Errorf("unexpected stored product: %+v", p)
		}
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	seedProducts()
	r := newRouter()

	del := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := del("/api/products/1"); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := del("/api/products/1"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for deleted product, got %d", w.Code)
	}
	if w := del("/api/products/x"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got %d", w.Code)
	}

	all, _ := productRepo.GetAll(t.Context())
	if len(all) != 1 || all[0].Name != "Defter" {
		t.Errorf("expected only Defter to remain, got %+v", all)
	}
}

func TestMutatingRoutesRequireToken(t *testing.T) {
	t.Cleanup(clearAllProducts)
	seedProducts()
	r := newRouter()

	tests := []struct {
		method string
		path   string
		auth   string
	}{
		{http.MethodPost, "/api/products", ""},
		{http.MethodPut, "/api/products/1", ""},
		{http.MethodDelete, "/api/products/1", ""},
		{http.MethodDelete, "/api/products/1", "Bearer not-a-token"},
		{http.MethodDelete, "/api/products/1", "Basic YWRtaW46c2VjcmV0"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.auth, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}

	if _, err := productRepo.GetByID(t.Context(), 1); err != nil {
		t.Errorf("product 1 should still exist: %v", err)
	}
}
