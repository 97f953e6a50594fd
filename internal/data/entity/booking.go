package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is the aggregate root for one reservation attempt: seats, tickets,
// payment and lifecycle status. It creates and owns its Payment, Tickets and,
// on cancellation, its Cancellation record.
type Booking struct {
	Base
	OrderID      string
	UserID       uuid.UUID
	ShowTime     *ShowTime
	Seats        []*Seat
	Tickets      []*Ticket
	Payment      *Payment
	History      *BookingHistory
	Cancellation *Cancellation
	Promotion    *Promotion
	Status       BookingStatus
}

func NewBooking(orderID string, userID uuid.UUID, showtime *ShowTime, seats []*Seat, history *BookingHistory) (*Booking, error) {
	if showtime == nil {
		return nil, fmt.Errorf("%w: booking requires a showtime", ErrValidation)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: booking requires at least one seat", ErrValidation)
	}
	if history == nil {
		return nil, fmt.Errorf("%w: booking requires a history", ErrValidation)
	}
	return &Booking{
		Base:     NewBase(),
		OrderID:  orderID,
		UserID:   userID,
		ShowTime: showtime,
		Seats:    seats,
		History:  history,
		Status:   BookingStatusPending,
	}, nil
}

func (b *Booking) HasSeat(seatID uuid.UUID) bool {
	for _, seat := range b.Seats {
		if seat.ID == seatID {
			return true
		}
	}
	return false
}

func (b *Booking) FindTicket(ticketID uuid.UUID) *Ticket {
	for _, ticket := range b.Tickets {
		if ticket.ID == ticketID {
			return ticket
		}
	}
	return nil
}

// Confirm moves the booking PENDING -> CONFIRMED. It requires at least one
// ticket and an attached payment; a second call fails since the status check
// doubles as the idempotency guard. All reserved seats are marked BOOKED
// (a no-op for seats already booked).
func (b *Booking) Confirm() error {
	if b.Status != BookingStatusPending {
		return fmt.Errorf("%w: booking is %s", ErrCannotConfirm, b.Status)
	}
	if len(b.Tickets) == 0 {
		return fmt.Errorf("%w: no tickets generated", ErrCannotConfirm)
	}
	if b.Payment == nil {
		return fmt.Errorf("%w: no payment attached", ErrCannotConfirm)
	}

	// All-or-nothing: a seat that cannot be booked releases the ones this
	// call already transitioned.
	booked := make([]*Seat, 0, len(b.Seats))
	for _, seat := range b.Seats {
		wasAvailable := seat.Status == SeatAvailable
		if err := seat.Book(); err != nil {
			for _, s := range booked {
				s.Release()
			}
			return fmt.Errorf("%w: %v", ErrCannotConfirm, err)
		}
		if wasAvailable {
			booked = append(booked, seat)
		}
	}
	b.Status = BookingStatusConfirmed
	b.UpdatedAt = nowFunc()
	b.History.AddEntry(fmt.Sprintf("Booking %s confirmed at %s", b.OrderID, b.UpdatedAt.Format(timeLayout)))
	return nil
}

// Cancel moves the booking CONFIRMED -> CANCELLED (terminal). It releases the
// reserved seats, refunds an attached completed payment and produces the one
// Cancellation record for this booking.
func (b *Booking) Cancel(reason string) (*Cancellation, error) {
	if b.Status != BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s", ErrCannotCancel, b.Status)
	}

	// Status first: the refund precondition checks for a cancelled booking.
	b.Status = BookingStatusCancelled
	b.UpdatedAt = nowFunc()

	for _, seat := range b.Seats {
		seat.Release()
	}

	if b.Payment != nil && b.Payment.Status == PaymentStatusComplete {
		if err := b.Payment.Refund(); err != nil {
			return nil, fmt.Errorf("refund payment: %w", err)
		}
	}

	b.Cancellation = newCancellation(b.ID, reason)
	b.History.AddEntry(fmt.Sprintf("Booking %s cancelled at %s: %s", b.OrderID, b.UpdatedAt.Format(timeLayout), b.Cancellation.Reason))
	return b.Cancellation, nil
}

// GenerateTicket issues a ticket for a seat already part of this booking.
// One ticket per seat per booking; generation is explicit, not automatic.
func (b *Booking) GenerateTicket(seat *Seat) (*Ticket, error) {
	if seat == nil || !b.HasSeat(seat.ID) {
		return nil, fmt.Errorf("%w: seat is not part of this booking", ErrValidation)
	}
	for _, ticket := range b.Tickets {
		if ticket.Seat.ID == seat.ID {
			return nil, fmt.Errorf("%w: seat %s already has a ticket", ErrDuplicate, seat.Label())
		}
	}

	ticket, err := NewTicket(seat, b.ID)
	if err != nil {
		return nil, err
	}
	b.Tickets = append(b.Tickets, ticket)
	b.History.AddEntry(fmt.Sprintf("Ticket %s generated for seat %s", ticket.ID, seat.Label()))
	return ticket, nil
}

// RemoveTicket drops the ticket with the given id or fails with ErrNotFound.
func (b *Booking) RemoveTicket(ticketID uuid.UUID) error {
	for i, ticket := range b.Tickets {
		if ticket.ID == ticketID {
			b.Tickets = append(b.Tickets[:i], b.Tickets[i+1:]...)
			b.History.AddEntry(fmt.Sprintf("Ticket %s removed from booking %s", ticketID, b.OrderID))
			return nil
		}
	}
	return fmt.Errorf("%w: ticket %s", ErrNotFound, ticketID)
}

// SetStatus validates against the closed enum; used by the history's status
// update path, not the normal confirm/cancel flow.
func (b *Booking) SetStatus(status BookingStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q is not a booking status", ErrInvalidStatus, status)
	}
	b.Status = status
	b.UpdatedAt = nowFunc()
	return nil
}

const timeLayout = "2006-01-02 15:04:05"
