package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

func errNotFoundForTest() error {
	return repo.ErrNotFound
}

func TestGetProducts_ReturnsOkWithProducts(t *testing.T) {
	c := NewProductsAPIController(newMockRepo(sampleProducts()...))

	res, err := c.GetProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Status)
	}
	list, ok := res.Value.([]models.Product)
	if !ok || len(list) != 2 {
		t.Errorf("expected 2 products, got %#v", res.Value)
	}
}

func TestGetProducts_RepositoryFailure(t *testing.T) {
	m := newMockRepo()
	m.getAllErr = errors.New("timeout")
	if _, err := NewProductsAPIController(m).GetProducts(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name         string
		id           int
		expectStatus int
		expectName   string
	}{
		{"unknown id", 0, http.StatusNotFound, ""},
		{"first product", 1, http.StatusOK, "Kalem"},
		{"second product", 2, http.StatusOK, "Defter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewProductsAPIController(newMockRepo(sampleProducts()...)).GetProduct(context.Background(), tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tt.expectStatus {
				t.Fatalf("expected %d, got %d", tt.expectStatus, res.Status)
			}
			if tt.expectStatus != http.StatusOK {
				if res.Value != nil {
					t.Errorf("expected no payload, got %#v", res.Value)
				}
				return
			}
			p, ok := res.Value.(models.Product)
			if !ok {
				t.Fatalf("expected models.Product, got %T", res.Value)
			}
			if p.ID != tt.id || p.Name != tt.expectName {
				t.Errorf("expected %d %s, got %d %s", tt.id, tt.expectName, p.ID, p.Name)
			}
		})
	}
}

func TestPutProduct(t *testing.T) {
	product := sampleProducts()[0]

	t.Run("id mismatch is bad request without update", func(t *testing.T) {
		m := newMockRepo(sampleProducts()...)
		res, err := NewProductsAPIController(m).PutProduct(context.Background(), 2, product)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", res.Status)
		}
		if len(m.updated) != 0 {
			t.Errorf("expected no update calls, got %d", len(m.updated))
		}
	})

	t.Run("matching id updates once", func(t *testing.T) {
		m := newMockRepo(sampleProducts()...)
		res, err := NewProductsAPIController(m).PutProduct(context.Background(), 1, product)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != http.StatusNoContent {
			t.Errorf("expected 204, got %d", res.Status)
		}
		if len(m.updated) != 1 || m.updated[0].Name != product.Name {
			t.Errorf("expected one update with the supplied product, got %+v", m.updated)
		}
	})

	t.Run("unknown record is not found", func(t *testing.T) {
		m := newMockRepo()
		m.updateErr = repo.ErrNotFound
		res, err := NewProductsAPIController(m).PutProduct(context.Background(), 1, product)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != http.StatusNotFound {
			t.Errorf("expected 404, got %d", res.Status)
		}
	})
}

func TestPostProduct_ReturnsCreatedAtGetProduct(t *testing.T) {
	product := sampleProducts()[0]
	m := newMockRepo()

	res, err := NewProductsAPIController(m).PostProduct(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.Status)
	}
	if len(m.created) != 1 || m.created[0].Name != product.Name {
		t.Errorf("expected exactly one create with the supplied product, got %+v", m.created)
	}
	if res.ActionName != ActionGetProduct {
		t.Errorf("expected action %q, got %q", ActionGetProduct, res.ActionName)
	}
	if res.RouteValues["id"] != product.ID {
		t.Errorf("expected route id %d, got %v", product.ID, res.RouteValues["id"])
	}
}

func TestDeleteProduct(t *testing.T) {
	t.Run("unknown id is not found", func(t *testing.T) {
		m := newMockRepo()
		res, err := NewProductsAPIController(m).DeleteProduct(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != http.StatusNotFound {
			t.Errorf("expected 404, got %d", res.Status)
		}
		if len(m.deleted) != 0 {
			t.Errorf("expected no delete calls, got %d", len(m.deleted))
		}
	})

	t.Run("stored id deletes once", func(t *testing.T) {
		m := newMockRepo(sampleProducts()...)
		res, err := NewProductsAPIController(m).DeleteProduct(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != http.StatusNoContent {
			t.Errorf("expected 204, got %d", res.Status)
		}
		if len(m.deleted) != 1 {
			t.Errorf("expected exactly one delete call, got %d", len(m.deleted))
		}
		if len(m.getByIDCalls) != 1 || m.getByIDCalls[0] != 1 {
			t.Errorf("expected exactly one lookup of id 1, got %v", m.getByIDCalls)
		}
	})
}
