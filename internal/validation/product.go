package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

const (
	maxNameLength  = 100
	maxColorLength = 50
)

// ValidateProduct checks the declared constraints of a product.
func ValidateProduct(p models.Product) *ModelState {
	ms := &ModelState{}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		ms.AddModelError("Name", "Name is required")
	} else if utf8.RuneCountInString(name) > maxNameLength {
		ms.AddModelError("Name", "Name cannot be longer than 100 characters")
	}
	if !p.Price.IsPositive() {
		ms.AddModelError("Price", "Price must be greater than zero")
	}
	if p.Stock < 0 {
		ms.AddModelError("Stock", "Stock cannot be negative")
	}
	if utf8.RuneCountInString(p.Color) > maxColorLength {
		ms.AddModelError("Color", "Color cannot be longer than 50 characters")
	}
	return ms
}
