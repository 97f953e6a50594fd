package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ticket is the proof-of-purchase artifact bound to one seat within a booking.
type Ticket struct {
	BaseSimple
	QRCode    string
	IssuedAt  time.Time
	Seat      *Seat
	BookingID uuid.UUID
}

func NewTicket(seat *Seat, bookingID uuid.UUID) (*Ticket, error) {
	if seat == nil {
		return nil, fmt.Errorf("%w: ticket requires a seat", ErrValidation)
	}
	t := &Ticket{
		BaseSimple: NewBaseSimple(),
		Seat:       seat,
		BookingID:  bookingID,
		IssuedAt:   nowFunc(),
	}
	t.RegenerateQR()
	return t, nil
}

// RegenerateQR rebuilds the QR payload from the ticket id and the current
// time. The payload is regenerable; only the ticket id part is stable.
func (t *Ticket) RegenerateQR() string {
	t.QRCode = fmt.Sprintf("QR-%s-%s", t.ID, nowFunc().UTC().Format(time.RFC3339))
	return t.QRCode
}
