package http

import (
	"net/http"
	"time"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Catalog        catalog.Catalog
	Checkout       Checkouter
	Carts          CartManager
	Logger         *zap.Logger
	RequestTimeout time.Duration
	MaxBodySize    int64
}

func NewRouter(cfg RouterConfig) http.Handler {
	products := NewProductHandler(cfg.Catalog)
	checkouts := NewCheckoutHandler(cfg.Checkout, cfg.MaxBodySize, cfg.Logger)
	carts := NewCartHandler(cfg.Carts, cfg.MaxBodySize, cfg.Logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(Recoverer(cfg.Logger))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Get("/products/{id}", products.Get)
		r.Get("/categories", products.Categories)
		r.Post("/checkout", checkouts.Checkout)

		r.Route("/cart", func(r chi.Router) {
			r.Use(SessionMiddleware)
			r.Get("/", carts.GetCart)
			r.Put("/", carts.ReplaceCart)
			r.Delete("/", carts.ClearCart)
			r.Post("/items", carts.AddItem)
			r.Put("/items/{productId}", carts.UpdateQuantity)
			r.Delete("/items/{productId}", carts.RemoveItem)
			r.Post("/checkout", carts.Checkout)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
