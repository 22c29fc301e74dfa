package response

import (
	"time"

	"rk-commerce/internal/data/entity"
)

type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Items           []entity.OrderItem `json:"items"`
	TotalAmount     float64            `json:"total_amount"`
	Status          entity.OrderStatus `json:"status"`
	PaymentMethod   string             `json:"payment_method"`
	ShippingAddress string             `json:"shipping_address"`
	CreatedAt       time.Time          `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := order.Items
	if items == nil {
		items = []entity.OrderItem{}
	}

	return OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i, order := range orders {
		result[i] = OrderToResponse(order)
	}
	return result
}
