package entity

type Product struct {
	BaseSimple  `bson:",inline"`
	Name        string  `bson:"name" db:"name"`
	Description string  `bson:"description" db:"description"`
	Price       float64 `bson:"price" db:"price"`
	Category    string  `bson:"category" db:"category"`
	ImageURL    string  `bson:"image_url" db:"image_url"`
	Stock       int     `bson:"stock" db:"stock"`
	IsActive    bool    `bson:"is_active" db:"is_active"`
}
