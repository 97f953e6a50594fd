package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePrice(t *testing.T) {
	showtime := testShowtime(t, 10.0)

	tests := []struct {
		label string
		want  float64
	}{
		{"A1", 10.0},
		{"D1", 12.0},
		{"E1", 15.0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			seat := seatByLabel(t, showtime.Room, tt.label)
			assert.Equal(t, tt.want, showtime.CalculatePrice(seat))
		})
	}
}

func TestCalculatePriceRounding(t *testing.T) {
	showtime := testShowtime(t, 9.99)
	seat := seatByLabel(t, showtime.Room, "D1")

	// 9.99 * 1.2 = 11.988, rounds to 11.99
	assert.Equal(t, 11.99, showtime.CalculatePrice(seat))
}

func TestAvailableSeatsRecomputed(t *testing.T) {
	showtime := testShowtime(t, 10.0)
	require.Len(t, showtime.AvailableSeats(), 3)
	assert.True(t, showtime.HasSeatsAvailable())

	seat := seatByLabel(t, showtime.Room, "A1")
	require.NoError(t, seat.Book())

	assert.Len(t, showtime.AvailableSeats(), 2)
	assert.False(t, showtime.IsSeatAvailable(seat))

	seat.Release()
	assert.Len(t, showtime.AvailableSeats(), 3)
	assert.True(t, showtime.IsSeatAvailable(seat))
}

func TestNewShowTimeValidation(t *testing.T) {
	room, err := NewMovieRoom("Room 1", uuid.New())
	require.NoError(t, err)
	movie, err := NewMovie("Orbit", "", []string{"Sci-Fi"}, 143)
	require.NoError(t, err)

	start := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		price float64
		room  *MovieRoom
		movie *Movie
	}{
		{"end before start", start, start.Add(-time.Hour), 10, room, movie},
		{"end equals start", start, start, 10, room, movie},
		{"negative price", start, start.Add(time.Hour), -1, room, movie},
		{"missing room", start, start.Add(time.Hour), 10, nil, movie},
		{"missing movie", start, start.Add(time.Hour), 10, room, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShowTime(tt.start, tt.end, tt.price, tt.room, tt.movie)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSeatZoneMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, ZoneStandard.Multiplier())
	assert.Equal(t, 1.2, ZonePremium.Multiplier())
	assert.Equal(t, 1.5, ZoneVIP.Multiplier())
}

func TestSeatBookTransitions(t *testing.T) {
	seat, err := NewSeat("B", 3, ZoneStandard, 10)
	require.NoError(t, err)

	require.NoError(t, seat.Book())
	assert.Equal(t, SeatBooked, seat.Status)

	// Booking an already booked seat is a no-op, not an error.
	require.NoError(t, seat.Book())

	require.NoError(t, seat.SetStatus(SeatReserved))
	err = seat.Book()
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	seat.Release()
	assert.Equal(t, SeatAvailable, seat.Status)
}
