package dto

type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"omitempty,max=50"`
	PriceIDR int64  `json:"price_idr" validate:"required,gt=0"`
	Stock    int    `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
	PriceIDR *int64  `json:"price_idr,omitempty" validate:"omitempty,gt=0"`
	Stock    *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}
