package adaptor

import (
	"net/http"

	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// AddItem handles POST /api/cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.AddToCartRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.service.AddItem(r.Context(), user.ID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to cart")
		return
	}

	utils.ResponseSuccess(w, item)
}

// ListCart handles GET /api/cart
func (h *CartHandler) ListCart(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	entries, err := h.service.ListCart(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "list cart")
		return
	}

	utils.ResponseSuccess(w, entries)
}

// RemoveItem handles DELETE /api/cart/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	if err := h.service.RemoveItem(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "remove cart item")
		return
	}

	utils.ResponseMessage(w, "Item removed from cart")
}
