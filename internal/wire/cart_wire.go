package wire

import (
	"net/http"

	"rk-commerce/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.ListCart)
		r.Post("/", cartHandler.AddItem)
		r.Delete("/{id}", cartHandler.RemoveItem) // DELETE /api/cart/{cart-item-id}
	})
}
