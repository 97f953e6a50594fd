package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
)

type BookingResponse struct {
	ID           string                `json:"id"`
	OrderID      string                `json:"order_id"`
	UserID       string                `json:"user_id"`
	ShowTimeID   string                `json:"showtime_id"`
	MovieTitle   string                `json:"movie_title"`
	RoomName     string                `json:"room_name"`
	StartTime    time.Time             `json:"start_time"`
	Status       entity.BookingStatus  `json:"status"`
	SeatLabels   []string              `json:"seat_labels"`
	Tickets      []TicketResponse      `json:"tickets,omitempty"`
	Payment      *PaymentResponse      `json:"payment,omitempty"`
	Cancellation *CancellationResponse `json:"cancellation,omitempty"`
	PromoCode    string                `json:"promo_code,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	Method    entity.PaymentMethod `json:"method,omitempty"`
	Total     float64              `json:"total"`
	Fee       float64              `json:"fee"`
	Tax       float64              `json:"tax"`
	Status    entity.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type TicketResponse struct {
	ID        string    `json:"id"`
	QRCode    string    `json:"qr_code"`
	SeatLabel string    `json:"seat_label"`
	IssuedAt  time.Time `json:"issued_at"`
}

type CancellationResponse struct {
	ID        string                    `json:"id"`
	Reason    string                    `json:"reason"`
	Status    entity.CancellationStatus `json:"status"`
	CreatedAt time.Time                 `json:"created_at"`
}

type HistoryResponse struct {
	ID       string            `json:"id"`
	UserID   string            `json:"user_id"`
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
	Entries  []string          `json:"entries"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		OrderID:    booking.OrderID,
		UserID:     booking.UserID.String(),
		ShowTimeID: booking.ShowTime.ID.String(),
		MovieTitle: booking.ShowTime.Movie.Title,
		RoomName:   booking.ShowTime.Room.Name,
		StartTime:  booking.ShowTime.StartTime,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}

	resp.SeatLabels = make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		resp.SeatLabels[i] = seat.Label()
	}

	for _, ticket := range booking.Tickets {
		resp.Tickets = append(resp.Tickets, TicketToResponse(ticket))
	}

	if booking.Payment != nil {
		payment := PaymentToResponse(booking.Payment)
		resp.Payment = &payment
	}
	if booking.Cancellation != nil {
		cancellation := CancellationToResponse(booking.Cancellation)
		resp.Cancellation = &cancellation
	}
	if booking.Promotion != nil {
		resp.PromoCode = booking.Promotion.Code
	}

	return resp
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.Booking.ID.String(),
		Method:    payment.Method,
		Total:     payment.Total,
		Fee:       payment.Fee,
		Tax:       payment.Tax,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID.String(),
		QRCode:    ticket.QRCode,
		SeatLabel: ticket.Seat.Label(),
		IssuedAt:  ticket.IssuedAt,
	}
}

func CancellationToResponse(c *entity.Cancellation) CancellationResponse {
	return CancellationResponse{
		ID:        c.ID.String(),
		Reason:    c.Reason,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}

func HistoryToResponse(history *entity.BookingHistory) HistoryResponse {
	resp := HistoryResponse{
		ID:       history.ID.String(),
		UserID:   history.UserID.String(),
		Upcoming: []BookingResponse{},
		Past:     []BookingResponse{},
		Entries:  history.Entries,
	}
	for _, b := range history.Upcoming() {
		resp.Upcoming = append(resp.Upcoming, BookingToResponse(b))
	}
	for _, b := range history.Past() {
		resp.Past = append(resp.Past, BookingToResponse(b))
	}
	return resp
}
