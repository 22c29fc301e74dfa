package response

import (
	"time"

	"rk-commerce/internal/data/entity"
)

type CartItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartEntryResponse joins a cart row with the product as it is now, not as it
// was when the row was added.
type CartEntryResponse struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

func CartItemToResponse(item *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
}
