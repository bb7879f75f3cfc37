package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/rogerio-castellano/product-catalog/internal/http/controllers"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/views"
)

// actionPaths maps page action names to their URLs.
var actionPaths = map[string]string{
	controllers.ActionIndex: "/products",
}

// IndexPage handles GET /products.
func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.pages.Index(r.Context())
	h.renderPage(w, r, res, err, "")
}

// DetailsPage handles GET /products/details/{id}.
func (h *Handler) DetailsPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.pages.Details(r.Context(), optionalID(r))
	h.renderPage(w, r, res, err, "")
}

// CreateFormPage handles GET /products/create.
func (h *Handler) CreateFormPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.pages.CreateForm(), nil, "")
}

// CreatePage handles POST /products/create.
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	input, ms := bindProductForm(w, r)
	res, err := h.pages.Create(r.Context(), input, ms)
	h.renderPage(w, r, res, err, r.PostForm.Get("price"))
}

// EditFormPage handles GET /products/edit/{id}.
func (h *Handler) EditFormPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.pages.EditForm(r.Context(), optionalID(r))
	h.renderPage(w, r, res, err, "")
}

// EditPage handles POST /products/edit/{id}.
func (h *Handler) EditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderPage(w, r, controllers.PageResult{Kind: controllers.PageNotFound}, nil, "")
		return
	}
	input, ms := bindProductForm(w, r)
	res, err := h.pages.Edit(r.Context(), id, input, ms)
	h.renderPage(w, r, res, err, r.PostForm.Get("price"))
}

// DeletePage handles GET /products/delete/{id}.
func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	res, err := h.pages.DeleteConfirm(r.Context(), optionalID(r))
	h.renderPage(w, r, res, err, "")
}

// DeleteConfirmedPage handles POST /products/delete/{id}.
func (h *Handler) DeleteConfirmedPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.renderPage(w, r, controllers.PageResult{Kind: controllers.PageNotFound}, nil, "")
		return
	}
	res, err := h.pages.DeleteConfirmed(r.Context(), id)
	h.renderPage(w, r, res, err, "")
}

// renderPage writes a page outcome. priceInput is the raw submitted price,
// echoed back when a form is re-rendered.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, res controllers.PageResult, err error, priceInput string) {
	if err != nil {
		h.logger.Error("product page request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	switch res.Kind {
	case controllers.PageRedirect:
		target, ok := actionPaths[res.ActionName]
		if !ok {
			h.logger.Error("redirect to unknown action", "action", res.ActionName)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, target, res.StatusCode())
	case controllers.PageNotFound:
		h.writeHTML(w, r, res.StatusCode(), views.NotFoundPage())
	default:
		component, ok := h.viewFor(res, priceInput)
		if !ok {
			h.logger.Error("unknown view", "view", res.ViewName, "model", res.Model)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.writeHTML(w, r, res.StatusCode(), component)
	}
}

func (h *Handler) viewFor(res controllers.PageResult, priceInput string) (templ.Component, bool) {
	switch res.ViewName {
	case controllers.ViewIndex:
		products, ok := res.Model.([]models.Product)
		return views.ProductListPage(products), ok
	case controllers.ViewDetails:
		product, ok := res.Model.(models.Product)
		return views.ProductDetailsPage(product), ok
	case controllers.ViewDelete:
		product, ok := res.Model.(models.Product)
		return views.ProductDeletePage(product), ok
	case controllers.ViewCreate, controllers.ViewEdit:
		product, ok := res.Model.(models.Product)
		if res.ModelState.IsValid() {
			priceInput = ""
		}
		return views.ProductFormPage(views.ProductFormData{
			Product:    product,
			PriceInput: priceInput,
			Errors:     res.ModelState,
			IsNew:      res.ViewName == controllers.ViewCreate,
		}), ok
	}
	return nil, false
}

func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "error", err, "path", r.URL.Path)
	}
}
