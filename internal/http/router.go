package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-catalog/internal/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
)

// RouterOptions holds the optional collaborators of NewRouter.
type RouterOptions struct {
	Logger *slog.Logger
	// Limiter enables per-client rate limiting when set.
	Limiter *rl.VisitorLimiter
}

// NewRouter mounts the pages and the JSON API. When h has login enabled,
// mutating API routes need a bearer token and mutating pages need a session
// cookie from /account/login.
func NewRouter(h *handlers.Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tokens := h.Tokens()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(Recover(logger))
	r.Use(RequestLogger(logger))
	r.Use(SecurityHeaders)
	if opts.Limiter != nil {
		r.Use(RateLimit(opts.Limiter))
	}
	if tokens != nil {
		r.Use(Session(tokens))
	}

	r.Get("/healthz", h.HealthHandler)
	r.Post("/login", h.LoginHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.IndexPage)
		r.Get("/details", h.DetailsPage)
		r.Get("/details/{id}", h.DetailsPage)

		r.Group(func(r chi.Router) {
			if tokens != nil {
				r.Use(RequireSession)
			}
			r.Get("/create", h.CreateFormPage)
			r.Post("/create", h.CreatePage)
			r.Get("/edit", h.EditFormPage)
			r.Get("/edit/{id}", h.EditFormPage)
			r.Post("/edit/{id}", h.EditPage)
			r.Get("/delete", h.DeletePage)
			r.Get("/delete/{id}", h.DeletePage)
			r.Post("/delete/{id}", h.DeleteConfirmedPage)
		})
	})

	r.Route("/account", func(r chi.Router) {
		r.Get("/login", h.AccountLoginForm)
		r.Post("/login", h.AccountLogin)
		r.Post("/logout", h.AccountLogout)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.GetProductsHandler)
		r.Get("/{id}", h.GetProductHandler)

		r.Group(func(r chi.Router) {
			if tokens != nil {
				r.Use(RequireBearer(tokens))
			}
			r.Post("/", h.PostProductHandler)
			r.Put("/{id}", h.PutProductHandler)
			r.Delete("/{id}", h.DeleteProductHandler)
		})
	})

	return r
}
