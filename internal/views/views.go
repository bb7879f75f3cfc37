// Package views renders the catalog pages as templ components. The
// *_templ.go files are generated from the .templ sources with templ generate.
package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/validation"
)

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// ProductFormData feeds the create and edit forms.
type ProductFormData struct {
	Product models.Product
	// PriceInput echoes the submitted price text so a value that failed to
	// parse is shown back unchanged.
	PriceInput string
	Errors     *validation.ModelState
	IsNew      bool
}

func (d ProductFormData) title() string {
	if d.IsNew {
		return "Create"
	}
	return "Edit"
}

func (d ProductFormData) action() templ.SafeURL {
	if d.IsNew {
		return templ.URL("/products/create")
	}
	return productURL("edit", d.Product.ID)
}

func (d ProductFormData) price() string {
	if d.PriceInput != "" || d.Product.Price.IsZero() {
		return d.PriceInput
	}
	return d.Product.Price.String()
}

func productURL(action string, id int) templ.SafeURL {
	return templ.URL(fmt.Sprintf("/products/%s/%d", action, id))
}
