package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testShowtime builds a screening in a 3-seat room: A1 standard, D1 premium,
// E1 VIP.
func testShowtime(t *testing.T, basePrice float64) *ShowTime {
	t.Helper()

	room, err := NewMovieRoom("Room 1", uuid.New())
	require.NoError(t, err)

	for _, s := range []struct {
		row  string
		zone SeatZone
	}{
		{"A", ZoneStandard},
		{"D", ZonePremium},
		{"E", ZoneVIP},
	} {
		seat, err := NewSeat(s.row, 1, s.zone, basePrice)
		require.NoError(t, err)
		room.AddSeat(seat)
	}

	movie, err := NewMovie("The Long Night", "", []string{"Thriller"}, 128)
	require.NoError(t, err)

	start := time.Now().Add(48 * time.Hour)
	showtime, err := NewShowTime(start, start.Add(2*time.Hour), basePrice, room, movie)
	require.NoError(t, err)
	return showtime
}

func seatByLabel(t *testing.T, room *MovieRoom, label string) *Seat {
	t.Helper()
	for _, seat := range room.Seats {
		if seat.Label() == label {
			return seat
		}
	}
	t.Fatalf("no seat %s in room %s", label, room.Name)
	return nil
}

// testBooking builds a pending booking over the given seats with a processed
// payment and one ticket per seat, ready to confirm.
func testBooking(t *testing.T, showtime *ShowTime, seats []*Seat) *Booking {
	t.Helper()

	history := NewBookingHistory(uuid.New())
	booking, err := NewBooking("BOOK-20260831-120000-0001", history.UserID, showtime, seats, history)
	require.NoError(t, err)
	require.NoError(t, history.AddBooking(booking))

	var subtotal float64
	for _, seat := range seats {
		subtotal += showtime.CalculatePrice(seat)
	}
	payment, err := NewPayment(booking, subtotal)
	require.NoError(t, err)
	require.NoError(t, payment.Process(subtotal, MethodCreditCard))
	booking.Payment = payment

	for _, seat := range seats {
		_, err := booking.GenerateTicket(seat)
		require.NoError(t, err)
	}
	return booking
}
