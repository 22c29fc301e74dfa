package entity

type OrderStatus string

// Orders are created pending and nothing moves them out of it yet.
const (
	OrderStatusPending OrderStatus = "pending"
)

// OrderItem is a snapshot of what the client ordered. It is not linked back
// to the live product record.
type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"product_id"`
	ProductName string  `bson:"product_name" json:"product_name"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
}

type Order struct {
	BaseSimple      `bson:",inline"`
	UserID          string      `bson:"user_id" db:"user_id"`
	Items           []OrderItem `bson:"items" db:"items"`
	TotalAmount     float64     `bson:"total_amount" db:"total_amount"`
	Status          OrderStatus `bson:"status" db:"status"`
	PaymentMethod   string      `bson:"payment_method" db:"payment_method"`
	ShippingAddress string      `bson:"shipping_address" db:"shipping_address"`
}
