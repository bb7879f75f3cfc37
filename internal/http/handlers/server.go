package handlers

import (
	"log/slog"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/http/controllers"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// Handler adapts the controllers to net/http.
type Handler struct {
	pages  *controllers.ProductsController
	api    *controllers.ProductsAPIController
	auth   *auth.AuthService
	logger *slog.Logger
}

// NewHandler wires both controllers to productRepo. authService may be nil
// when token login is disabled.
func NewHandler(productRepo repo.ProductRepository, authService *auth.AuthService, logger *slog.Logger) *Handler {
	return &Handler{
		pages:  controllers.NewProductsController(productRepo),
		api:    controllers.NewProductsAPIController(productRepo),
		auth:   authService,
		logger: logger,
	}
}

// Tokens returns the manager that verifies bearer tokens and page sessions,
// or nil when login is disabled.
func (h *Handler) Tokens() *auth.TokenManager {
	if h.auth == nil {
		return nil
	}
	return h.auth.Tokens()
}
