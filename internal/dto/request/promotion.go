package request

type CreatePromotionRequest struct {
	Code        string  `json:"code" validate:"required,min=3,max=50"`
	Discount    float64 `json:"discount" validate:"min=0,max=100"`
	Description string  `json:"description" validate:"required,min=1,max=500"`
	Active      bool    `json:"active"`
}

type UpdatePromotionRequest struct {
	Code        string   `json:"code,omitempty" validate:"omitempty,min=3,max=50"`
	Discount    *float64 `json:"discount,omitempty" validate:"omitempty,min=0,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
	Active      bool     `json:"active"`
}
