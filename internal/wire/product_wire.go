package wire

import (
	"rk-commerce/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireProduct configures catalog routes. All of them are public, product
// creation and seeding included.
func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)   // GET /api/products?category=electronics
		r.Post("/", productHandler.CreateProduct) // POST /api/products
		r.Get("/{id}", productHandler.GetProduct) // GET /api/products/{product-id}
	})
	r.Post("/init-products", productHandler.InitProducts)
}
