package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the catalogue.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Color string          `json:"color"`
}
