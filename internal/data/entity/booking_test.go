package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirm(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	seats := []*Seat{seatByLabel(t, showtime.Room, "A1"), seatByLabel(t, showtime.Room, "E1")}
	booking := testBooking(t, showtime, seats)

	require.NoError(t, booking.Confirm())

	assert.Equal(t, BookingStatusConfirmed, booking.Status)
	for _, seat := range seats {
		assert.Equal(t, SeatBooked, seat.Status)
	}
	assert.Len(t, showtime.AvailableSeats(), 1)
}

func TestBookingConfirmOnlyOnce(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	booking := testBooking(t, showtime, showtime.Room.Seats[:1])

	require.NoError(t, booking.Confirm())

	err := booking.Confirm()
	assert.ErrorIs(t, err, ErrCannotConfirm)
	assert.Equal(t, BookingStatusConfirmed, booking.Status)
}

func TestBookingConfirmRequiresTicketsAndPayment(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	history := NewBookingHistory(uuid.New())
	booking, err := NewBooking("BOOK-20260831-110000-0001", history.UserID, showtime, showtime.Room.Seats[:1], history)
	require.NoError(t, err)

	err = booking.Confirm()
	assert.ErrorIs(t, err, ErrCannotConfirm)

	_, err = booking.GenerateTicket(showtime.Room.Seats[0])
	require.NoError(t, err)

	// Tickets exist but no payment attached.
	err = booking.Confirm()
	assert.ErrorIs(t, err, ErrCannotConfirm)
	assert.Equal(t, BookingStatusPending, booking.Status)
}

func TestBookingConfirmRollsBackSeatsOnFailure(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	first := seatByLabel(t, showtime.Room, "A1")
	blocked := seatByLabel(t, showtime.Room, "E1")
	booking := testBooking(t, showtime, []*Seat{first, blocked})

	// Second seat goes out from under the booking before confirmation.
	require.NoError(t, blocked.SetStatus(SeatReserved))

	err := booking.Confirm()
	assert.ErrorIs(t, err, ErrCannotConfirm)
	assert.Equal(t, BookingStatusPending, booking.Status)

	// The seat booked earlier in the loop must be released again.
	assert.Equal(t, SeatAvailable, first.Status)
	assert.Equal(t, SeatReserved, blocked.Status)
}

func TestBookingCancel(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	seats := showtime.Room.Seats[:2]
	booking := testBooking(t, showtime, seats)
	require.NoError(t, booking.Confirm())

	cancellation, err := booking.Cancel("change of plans")
	require.NoError(t, err)

	assert.Equal(t, BookingStatusCancelled, booking.Status)
	assert.Equal(t, "change of plans", cancellation.Reason)
	assert.Equal(t, CancellationCompleted, cancellation.Status)
	assert.Equal(t, booking.ID, cancellation.BookingID)
	assert.Same(t, cancellation, booking.Cancellation)

	for _, seat := range seats {
		assert.Equal(t, SeatAvailable, seat.Status)
	}
	assert.Equal(t, PaymentStatusCancelled, booking.Payment.Status)
}

func TestBookingCancelDefaultReason(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	booking := testBooking(t, showtime, showtime.Room.Seats[:1])
	require.NoError(t, booking.Confirm())

	cancellation, err := booking.Cancel("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCancelReason, cancellation.Reason)
}

func TestBookingCancelOnlyFromConfirmed(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	booking := testBooking(t, showtime, showtime.Room.Seats[:1])

	_, err := booking.Cancel("too early")
	assert.ErrorIs(t, err, ErrCannotCancel)

	require.NoError(t, booking.Confirm())
	_, err = booking.Cancel("first")
	require.NoError(t, err)

	// Terminal state; a second cancel must fail.
	_, err = booking.Cancel("second")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGenerateTicket(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	seat := seatByLabel(t, showtime.Room, "A1")
	outside := seatByLabel(t, showtime.Room, "E1")

	history := NewBookingHistory(uuid.New())
	booking, err := NewBooking("BOOK-20260831-110000-0002", history.UserID, showtime, []*Seat{seat}, history)
	require.NoError(t, err)

	ticket, err := booking.GenerateTicket(seat)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, ticket.BookingID)
	assert.Contains(t, ticket.QRCode, "QR-")
	assert.Contains(t, ticket.QRCode, ticket.ID.String())

	// One ticket per seat per booking.
	_, err = booking.GenerateTicket(seat)
	assert.ErrorIs(t, err, ErrDuplicate)

	// Seat outside the booking.
	_, err = booking.GenerateTicket(outside)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = booking.GenerateTicket(nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRemoveTicket(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	booking := testBooking(t, showtime, showtime.Room.Seats[:1])
	ticket := booking.Tickets[0]

	require.NoError(t, booking.RemoveTicket(ticket.ID))
	assert.Empty(t, booking.Tickets)

	err := booking.RemoveTicket(ticket.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryPartition(t *testing.T) {
	history := NewBookingHistory(uuid.New())

	future := testShowtime(t, 10.0)
	pastShow := testShowtime(t, 10.0)
	pastShow.StartTime = time.Now().Add(-48 * time.Hour)
	pastShow.EndTime = pastShow.StartTime.Add(2 * time.Hour)

	upcoming, err := NewBooking("BOOK-1", history.UserID, future, future.Room.Seats[:1], history)
	require.NoError(t, err)
	past, err := NewBooking("BOOK-2", history.UserID, pastShow, pastShow.Room.Seats[:1], history)
	require.NoError(t, err)
	cancelled, err := NewBooking("BOOK-3", history.UserID, future, future.Room.Seats[1:2], history)
	require.NoError(t, err)
	require.NoError(t, cancelled.SetStatus(BookingStatusCancelled))

	for _, b := range []*Booking{upcoming, past, cancelled} {
		require.NoError(t, history.AddBooking(b))
	}

	up := history.Upcoming()
	require.Len(t, up, 1)
	assert.Equal(t, "BOOK-1", up[0].OrderID)

	// Cancelled bookings and past showtimes both land in the past partition;
	// together the two partitions cover everything.
	pastList := history.Past()
	require.Len(t, pastList, 2)
	assert.Len(t, up, len(history.Bookings)-len(pastList))
}

func TestHistoryUpdateBookingStatus(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	booking := testBooking(t, showtime, showtime.Room.Seats[:1])
	history := booking.History

	require.NoError(t, history.UpdateBookingStatus(booking.ID, BookingStatusConfirmed))
	assert.Equal(t, BookingStatusConfirmed, booking.Status)

	err := history.UpdateBookingStatus(booking.ID, BookingStatus("UNKNOWN"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = history.UpdateBookingStatus(uuid.New(), BookingStatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewBookingValidation(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	history := NewBookingHistory(uuid.New())

	_, err := NewBooking("BOOK-X", history.UserID, nil, showtime.Room.Seats[:1], history)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBooking("BOOK-X", history.UserID, showtime, nil, history)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewBooking("BOOK-X", history.UserID, showtime, showtime.Room.Seats[:1], nil)
	assert.ErrorIs(t, err, ErrValidation)
}
