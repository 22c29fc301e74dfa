package entity

// CartItem is one row per (user, product); adding the same product again
// bumps Quantity instead of inserting a second row.
type CartItem struct {
	BaseSimple `bson:",inline"`
	UserID     string `bson:"user_id" db:"user_id"`
	ProductID  string `bson:"product_id" db:"product_id"`
	Quantity   int    `bson:"quantity" db:"quantity"`
}
