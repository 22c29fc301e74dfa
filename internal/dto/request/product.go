package request

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required,max=100"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=1000"`
	Stock       int      `json:"stock" validate:"gte=0"`
}
