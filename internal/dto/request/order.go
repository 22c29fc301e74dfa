package request

type OrderItemRequest struct {
	ProductID   string   `json:"product_id" validate:"required"`
	ProductName string   `json:"product_name" validate:"required"`
	Quantity    int      `json:"quantity" validate:"gt=0"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

// PlaceOrderRequest is stored as sent. Prices and totals are not checked
// against the catalog, but they must be present: a missing amount is not 0.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,dive"`
	TotalAmount     *float64           `json:"total_amount" validate:"required,gte=0"`
	PaymentMethod   string             `json:"payment_method" validate:"required,max=100"`
	ShippingAddress string             `json:"shipping_address" validate:"required,max=500"`
}
