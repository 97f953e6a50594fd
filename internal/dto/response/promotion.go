package response

import (
	"cinema-tickets/internal/data/entity"
)

type PromotionResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
}

func PromotionToResponse(promo *entity.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          promo.ID.String(),
		Code:        promo.Code,
		Discount:    promo.Discount,
		Description: promo.Description,
		Active:      promo.Active,
	}
}
