package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/validation"
)

// bindProductForm reads a posted product form. Values that cannot be
// converted are recorded in the returned ModelState under their field, and
// declared constraints are checked for the remaining fields.
func bindProductForm(w http.ResponseWriter, r *http.Request) (models.Product, *validation.ModelState) {
	ms := &validation.ModelState{}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		ms.AddModelError("", "The form could not be read.")
		return models.Product{}, ms
	}

	var p models.Product
	if v := strings.TrimSpace(r.PostForm.Get("id")); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			ms.AddModelError("Id", notValid(v, "Id"))
		}
		p.ID = id
	}
	p.Name = strings.TrimSpace(r.PostForm.Get("name"))
	if v := strings.TrimSpace(r.PostForm.Get("price")); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			ms.AddModelError("Price", notValid(v, "Price"))
		} else {
			p.Price = price
		}
	}
	if v := strings.TrimSpace(r.PostForm.Get("stock")); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			ms.AddModelError("Stock", notValid(v, "Stock"))
		} else {
			p.Stock = stock
		}
	}
	p.Color = strings.TrimSpace(r.PostForm.Get("color"))

	for _, e := range validation.ValidateProduct(p).Errors() {
		if len(ms.For(e.Field)) == 0 {
			ms.AddModelError(e.Field, e.Description)
		}
	}
	return p, ms
}

func notValid(value, field string) string {
	return fmt.Sprintf("The value '%s' is not valid for %s.", value, field)
}
