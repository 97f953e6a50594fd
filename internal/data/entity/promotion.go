package entity

import (
	"fmt"
)

// Promotion is a percentage discount applied to a booking subtotal before the
// payment is created.
type Promotion struct {
	Base
	Code        string
	Discount    float64 // percent, 0-100
	Description string
	Active      bool
}

func NewPromotion(code string, discount float64, description string, active bool) (*Promotion, error) {
	if code == "" || description == "" {
		return nil, fmt.Errorf("%w: promotion code and description are required", ErrValidation)
	}
	if discount < 0 || discount > 100 {
		return nil, fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}
	return &Promotion{
		Base:        NewBase(),
		Code:        code,
		Discount:    discount,
		Description: description,
		Active:      active,
	}, nil
}

// ValidateCode reports whether the given code matches and the promotion is
// active.
func (p *Promotion) ValidateCode(code string) bool {
	return p.Code == code && p.Active
}

// ApplyDiscount returns the amount after the discount, rounded to 2 decimals.
// Inactive promotions and non-positive amounts pass through unchanged.
func (p *Promotion) ApplyDiscount(amount float64) float64 {
	if amount <= 0 || !p.Active {
		return amount
	}
	return round2(amount - amount*p.Discount/100)
}

// Update changes the promotion in place; zero values leave fields untouched
// except Active, which is always set.
func (p *Promotion) Update(code string, discount *float64, description string, active bool) error {
	if discount != nil && (*discount < 0 || *discount > 100) {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}
	if code != "" {
		p.Code = code
	}
	if discount != nil {
		p.Discount = *discount
	}
	if description != "" {
		p.Description = description
	}
	p.Active = active
	p.UpdatedAt = nowFunc()
	return nil
}
