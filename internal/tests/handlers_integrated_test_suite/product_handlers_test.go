//go:build integration

package handlers_integrated_test_suite

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

func TestProductLifecycle(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/products", handler.ProductRequest{
		Name: "Kalem", Price: decimal.RequireFromString("10.50"), Stock: 5, Color: "Blue",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.Id == 0 {
		t.Fatal("expected generated id")
	}
	if loc := w.Header().Get("Location"); loc != "/api/products/1" {
		t.Errorf("unexpected Location %q", loc)
	}

	w = doJSON(r, http.MethodPut, "/api/products/1", handler.ProductRequest{
		Id: 1, Name: "Kalem", Price: decimal.RequireFromString("11.25"), Stock: 4, Color: "Blue",
	})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	got, err := productRepo.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("11.25")) || got.Stock != 4 {
		t.Errorf("update not persisted: %+v", got)
	}

	if w := doJSON(r, http.MethodDelete, "/api/products/1", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/products/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestPostgresRepository_MissingRows(t *testing.T) {
	t.Cleanup(clearAllProducts)
	ctx := t.Context()

	if _, err := productRepo.GetByID(ctx, 404); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("GetByID: expected ErrNotFound, got %v", err)
	}
	ghost := models.Product{ID: 404, Name: "Ghost", Price: decimal.NewFromInt(1)}
	if err := productRepo.Update(ctx, ghost); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := productRepo.Delete(ctx, ghost); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}

	all, err := productRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", all)
	}
}

func TestPostgresRepository_OrdersByID(t *testing.T) {
	t.Cleanup(clearAllProducts)
	ctx := t.Context()

	for _, name := range []string{"Kalem", "Defter", "Silgi"} {
		if _, err := productRepo.Create(ctx, models.Product{Name: name, Price: decimal.NewFromInt(2)}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	all, err := productRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Kalem" || all[2].Name != "Silgi" {
		t.Errorf("unexpected order: %+v", all)
	}
}
