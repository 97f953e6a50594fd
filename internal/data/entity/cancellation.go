package entity

import (
	"github.com/google/uuid"
)

type CancellationStatus string

const (
	CancellationPending   CancellationStatus = "PENDING"
	CancellationCompleted CancellationStatus = "COMPLETED"
)

// Cancellation records the reversal of a confirmed booking. It is a value
// record produced by Booking.Cancel and never mutates the booking itself;
// the booking owns the state transition.
type Cancellation struct {
	BaseSimple
	BookingID uuid.UUID
	Reason    string
	Status    CancellationStatus
}

// DefaultCancelReason is used when the caller supplies no reason; a completed
// cancellation must carry a non-empty one.
const DefaultCancelReason = "cancelled by user"

func newCancellation(bookingID uuid.UUID, reason string) *Cancellation {
	if reason == "" {
		reason = DefaultCancelReason
	}
	return &Cancellation{
		BaseSimple: NewBaseSimple(),
		BookingID:  bookingID,
		Reason:     reason,
		Status:     CancellationCompleted,
	}
}
