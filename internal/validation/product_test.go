package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func TestValidateProduct(t *testing.T) {
	valid := models.Product{Name: "Kalem", Price: decimal.NewFromInt(100), Stock: 50, Color: "Kırmızı"}

	tests := []struct {
		name           string
		mutate         func(p *models.Product)
		expectedFields []string
	}{
		{name: "Valid product", mutate: func(p *models.Product) {}},
		{name: "Empty name", mutate: func(p *models.Product) { p.Name = "   " }, expectedFields: []string{"Name"}},
		{name: "Name too long", mutate: func(p *models.Product) { p.Name = strings.Repeat("a", 101) }, expectedFields: []string{"Name"}},
		{name: "Zero price", mutate: func(p *models.Product) { p.Price = decimal.Zero }, expectedFields: []string{"Price"}},
		{name: "Negative stock", mutate: func(p *models.Product) { p.Stock = -1 }, expectedFields: []string{"Stock"}},
		{name: "Color too long", mutate: func(p *models.Product) { p.Color = strings.Repeat("c", 51) }, expectedFields: []string{"Color"}},
		{
			name:           "Everything wrong",
			mutate:         func(p *models.Product) { p.Name = ""; p.Price = decimal.NewFromInt(-5); p.Stock = -3 },
			expectedFields: []string{"Name", "Price", "Stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			ms := ValidateProduct(p)

			if got := len(ms.Errors()); got != len(tt.expectedFields) {
				t.Fatalf("expected %d errors, got %d: %+v", len(tt.expectedFields), got, ms.Errors())
			}
			if ms.IsValid() != (len(tt.expectedFields) == 0) {
				t.Errorf("IsValid() = %v with errors %+v", ms.IsValid(), ms.Errors())
			}
			for _, field := range tt.expectedFields {
				if len(ms.For(field)) == 0 {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestModelState(t *testing.T) {
	var zero ModelState
	if !zero.IsValid() {
		t.Error("zero ModelState should be valid")
	}

	var nilState *ModelState
	if !nilState.IsValid() {
		t.Error("nil ModelState should be valid")
	}

	ms := &ModelState{}
	ms.AddModelError("Name", "Name is required")
	ms.AddModelError("", "Hata")
	ms.AddModelError("Price", "Price must be greater than zero")

	if ms.IsValid() {
		t.Fatal("expected invalid ModelState")
	}
	errs := ms.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	if errs[1].Field != "" || errs[1].Description != "Hata" {
		t.Errorf("expected model-level error second, got %+v", errs[1])
	}

	errs[0].Description = "mutated"
	if ms.For("Name")[0] != "Name is required" {
		t.Error("Errors() must return a copy")
	}
}
