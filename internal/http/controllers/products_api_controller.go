package controllers

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// ActionGetProduct names the operation that serves a single product.
const ActionGetProduct = "GetProduct"

// ProductsAPIController drives the machine-facing product endpoints.
type ProductsAPIController struct {
	repo repo.ProductRepository
}

func NewProductsAPIController(r repo.ProductRepository) *ProductsAPIController {
	return &ProductsAPIController{repo: r}
}

func (c *ProductsAPIController) GetProducts(ctx context.Context) (APIResult, error) {
	products, err := c.repo.GetAll(ctx)
	if err != nil {
		return APIResult{}, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return ok(products), nil
}

func (c *ProductsAPIController) GetProduct(ctx context.Context, id int) (APIResult, error) {
	product, err := c.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(), nil
		}
		return APIResult{}, err
	}
	return ok(product), nil
}

func (c *ProductsAPIController) PostProduct(ctx context.Context, input models.Product) (APIResult, error) {
	created, err := c.repo.Create(ctx, input)
	if err != nil {
		return APIResult{}, err
	}
	return createdAtAction(ActionGetProduct, map[string]any{"id": created.ID}, created), nil
}

// PutProduct replaces a product. The route id must match the body id.
func (c *ProductsAPIController) PutProduct(ctx context.Context, id int, input models.Product) (APIResult, error) {
	if id != input.ID {
		return badRequest(), nil
	}
	if err := c.repo.Update(ctx, input); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(), nil
		}
		return APIResult{}, err
	}
	return noContent(), nil
}

func (c *ProductsAPIController) DeleteProduct(ctx context.Context, id int) (APIResult, error) {
	product, err := c.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(), nil
		}
		return APIResult{}, err
	}
	if err := c.repo.Delete(ctx, product); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(), nil
		}
		return APIResult{}, err
	}
	return noContent(), nil
}
