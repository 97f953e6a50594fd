package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// BookingHistory is the per-user, append-only log of bookings and free-text
// audit entries. Insertion order is preserved for both lists.
type BookingHistory struct {
	Base
	UserID   uuid.UUID
	Bookings []*Booking
	Entries  []string
}

func NewBookingHistory(userID uuid.UUID) *BookingHistory {
	return &BookingHistory{
		Base:   NewBase(),
		UserID: userID,
	}
}

func (h *BookingHistory) AddBooking(booking *Booking) error {
	if booking == nil {
		return fmt.Errorf("%w: booking is required", ErrValidation)
	}
	h.Bookings = append(h.Bookings, booking)
	return nil
}

func (h *BookingHistory) AddEntry(entry string) {
	if entry == "" {
		return
	}
	h.Entries = append(h.Entries, entry)
}

// Upcoming returns bookings whose showtime starts in the future and that are
// not cancelled. The partition keys off the showtime start, not the booking
// creation date, and is recomputed on every call.
func (h *BookingHistory) Upcoming() []*Booking {
	now := nowFunc()
	upcoming := make([]*Booking, 0, len(h.Bookings))
	for _, b := range h.Bookings {
		if b.ShowTime.StartTime.After(now) && b.Status != BookingStatusCancelled {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming
}

// Past is the complement of Upcoming: elapsed showtimes and cancelled
// bookings. Every booking lands in exactly one of the two partitions.
func (h *BookingHistory) Past() []*Booking {
	now := nowFunc()
	past := make([]*Booking, 0, len(h.Bookings))
	for _, b := range h.Bookings {
		if !b.ShowTime.StartTime.After(now) || b.Status == BookingStatusCancelled {
			past = append(past, b)
		}
	}
	return past
}

func (h *BookingHistory) FindBooking(bookingID uuid.UUID) *Booking {
	for _, b := range h.Bookings {
		if b.ID == bookingID {
			return b
		}
	}
	return nil
}

// UpdateBookingStatus looks the booking up by id, delegates to SetStatus and
// records an audit entry.
func (h *BookingHistory) UpdateBookingStatus(bookingID uuid.UUID, status BookingStatus) error {
	booking := h.FindBooking(bookingID)
	if booking == nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	if err := booking.SetStatus(status); err != nil {
		return err
	}
	h.AddEntry(fmt.Sprintf("Booking %s status updated to %s", booking.OrderID, status))
	return nil
}
