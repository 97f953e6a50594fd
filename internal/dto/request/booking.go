package request

type CreateBookingRequest struct {
	ShowTimeID    string   `json:"showtime_id" validate:"required,uuid4"`
	SeatIDs       []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof='Credit Card' 'Debit Card' Cash"`
	PromoCode     string   `json:"promo_code,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type GenerateTicketRequest struct {
	SeatID string `json:"seat_id" validate:"required,uuid4"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETE CANCELLED FAILED"`
}
