package request

// AddToCartRequest leaves Quantity nil when the field is omitted; the service
// then adds one unit.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,gt=0"`
}

func (r AddToCartRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}
