package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/validation"
)

type ProductRequest struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Color string          `json:"color"`
}

func (r ProductRequest) toModel() models.Product {
	return models.Product{
		ID:    r.Id,
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
		Color: r.Color,
	}
}

type ProductResponse struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Color string          `json:"color"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
		Color: p.Color,
	}
}

type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}
