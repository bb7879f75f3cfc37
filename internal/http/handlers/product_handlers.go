package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/http/controllers"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/validation"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *Handler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := h.api.GetProducts(r.Context())
	h.writeAPIResult(w, r, res, err)
}

// GetProductHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid product ID")
		return
	}
	res, err := h.api.GetProduct(r.Context(), id)
	h.writeAPIResult(w, r, res, err)
}

// PostProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Header 201 {string} Location "URL of the created product"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func (h *Handler) PostProductHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	res, err := h.api.PostProduct(r.Context(), product)
	h.writeAPIResult(w, r, res, err)
}

// PutProductHandler godoc
// @Summary Replace a product
// @Description The body id must equal the route id.
// @Tags products
// @Accept json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Replacement product"
// @Security BearerAuth
// @Success 204 "Updated successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
func (h *Handler) PutProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid product ID")
		return
	}
	product, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	res, err := h.api.PutProduct(r.Context(), id, product)
	h.writeAPIResult(w, r, res, err)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Security BearerAuth
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid product ID")
		return
	}
	res, err := h.api.DeleteProduct(r.Context(), id)
	h.writeAPIResult(w, r, res, err)
}

// decodeProduct reads and validates a product body, answering 400 itself
// when it cannot.
func (h *Handler) decodeProduct(w http.ResponseWriter, r *http.Request) (models.Product, bool) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		h.logger.Debug("rejected product body", "error", err)
		WriteError(w, http.StatusBadRequest, "invalid input")
		return models.Product{}, false
	}

	product := req.toModel()
	if ms := validation.ValidateProduct(product); !ms.IsValid() {
		_ = writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: ms.Errors()})
		return models.Product{}, false
	}
	return product, true
}

func (h *Handler) writeAPIResult(w http.ResponseWriter, r *http.Request, res controllers.APIResult, err error) {
	if err != nil {
		h.logger.Error("product api request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var headers []http.Header
	if res.Status == http.StatusCreated {
		if loc, ok := locationFor(res.ActionName, res.RouteValues); ok {
			headers = append(headers, http.Header{"Location": []string{loc}})
		}
	}

	switch {
	case res.Value != nil:
		if err := writeJSON(w, res.Status, toAPIValue(res.Value), headers...); err != nil {
			h.logger.Error("failed to write JSON response", "error", err)
		}
	case res.Status == http.StatusNoContent:
		w.WriteHeader(http.StatusNoContent)
	case res.Status == http.StatusNotFound:
		WriteError(w, res.Status, "product not found")
	case res.Status == http.StatusBadRequest:
		WriteError(w, res.Status, "route id does not match product id")
	default:
		WriteError(w, res.Status, http.StatusText(res.Status))
	}
}

// locationFor resolves a created-at-action reference to a URL.
func locationFor(action string, values map[string]any) (string, bool) {
	switch action {
	case controllers.ActionGetProduct:
		id, ok := values["id"]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("/api/products/%v", id), true
	}
	return "", false
}

func toAPIValue(v any) any {
	switch v := v.(type) {
	case models.Product:
		return toProductResponse(v)
	case []models.Product:
		out := make([]ProductResponse, len(v))
		for i, p := range v {
			out[i] = toProductResponse(p)
		}
		return out
	default:
		return v
	}
}
