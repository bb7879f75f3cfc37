package controllers

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/rogerio-castellano/product-catalog/internal/validation"
)

// View and action names used by the page flow.
const (
	ActionIndex = "Index"

	ViewIndex   = "Index"
	ViewDetails = "Details"
	ViewCreate  = "Create"
	ViewEdit    = "Edit"
	ViewDelete  = "Delete"
)

// ProductsController drives the human-facing CRUD pages.
type ProductsController struct {
	repo repo.ProductRepository
}

func NewProductsController(r repo.ProductRepository) *ProductsController {
	return &ProductsController{repo: r}
}

// Index lists every product.
func (c *ProductsController) Index(ctx context.Context) (PageResult, error) {
	products, err := c.repo.GetAll(ctx)
	if err != nil {
		return PageResult{}, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return view(ViewIndex, products), nil
}

// Details shows one product. A missing id sends the user back to the list.
func (c *ProductsController) Details(ctx context.Context, id *int) (PageResult, error) {
	if id == nil {
		return redirectToAction(ActionIndex), nil
	}
	return c.viewOf(ctx, ViewDetails, *id)
}

// CreateForm renders an empty input form.
func (c *ProductsController) CreateForm() PageResult {
	return view(ViewCreate, models.Product{})
}

// Create stores input when ms reports no errors.
func (c *ProductsController) Create(ctx context.Context, input models.Product, ms *validation.ModelState) (PageResult, error) {
	if !ms.IsValid() {
		res := view(ViewCreate, input)
		res.ModelState = ms
		return res, nil
	}
	if _, err := c.repo.Create(ctx, input); err != nil {
		return PageResult{}, err
	}
	return redirectToAction(ActionIndex), nil
}

// EditForm renders the edit form for a stored product.
func (c *ProductsController) EditForm(ctx context.Context, id *int) (PageResult, error) {
	if id == nil {
		return redirectToAction(ActionIndex), nil
	}
	return c.viewOf(ctx, ViewEdit, *id)
}

// Edit replaces the stored product. The route id must match the posted id.
func (c *ProductsController) Edit(ctx context.Context, id int, input models.Product, ms *validation.ModelState) (PageResult, error) {
	if id != input.ID {
		return notFoundPage(), nil
	}
	if !ms.IsValid() {
		res := view(ViewEdit, input)
		res.ModelState = ms
		return res, nil
	}
	if err := c.repo.Update(ctx, input); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundPage(), nil
		}
		return PageResult{}, err
	}
	return redirectToAction(ActionIndex), nil
}

// DeleteConfirm asks the user to confirm a deletion. Unlike Details, a
// missing id is not found rather than a redirect.
func (c *ProductsController) DeleteConfirm(ctx context.Context, id *int) (PageResult, error) {
	if id == nil {
		return notFoundPage(), nil
	}
	return c.viewOf(ctx, ViewDelete, *id)
}

// DeleteConfirmed removes the product after confirmation.
func (c *ProductsController) DeleteConfirmed(ctx context.Context, id int) (PageResult, error) {
	product, err := c.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundPage(), nil
		}
		return PageResult{}, err
	}
	if err := c.repo.Delete(ctx, product); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundPage(), nil
		}
		return PageResult{}, err
	}
	return redirectToAction(ActionIndex), nil
}

func (c *ProductsController) viewOf(ctx context.Context, name string, id int) (PageResult, error) {
	product, err := c.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundPage(), nil
		}
		return PageResult{}, err
	}
	return view(name, product), nil
}
