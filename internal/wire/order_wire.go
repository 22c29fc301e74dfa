package wire

import (
	"net/http"

	"rk-commerce/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler, requireAuth func(http.Handler) http.Handler) {
	r.With(requireAuth).Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.PlaceOrder)
	})
}
