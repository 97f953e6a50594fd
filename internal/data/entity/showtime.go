package entity

import (
	"fmt"
	"time"
)

// ShowTime is a scheduled screening binding a movie to a room at a time range
// and base price. It is the seat-availability authority for that screening.
type ShowTime struct {
	Base
	StartTime time.Time
	EndTime   time.Time
	BasePrice float64
	Room      *MovieRoom
	Movie     *Movie
}

func NewShowTime(start, end time.Time, basePrice float64, room *MovieRoom, movie *Movie) (*ShowTime, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: showtime start and end are required", ErrValidation)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: showtime must end after it starts", ErrValidation)
	}
	if basePrice < 0 {
		return nil, fmt.Errorf("%w: showtime price must be non-negative", ErrValidation)
	}
	if room == nil || movie == nil {
		return nil, fmt.Errorf("%w: showtime requires a room and a movie", ErrValidation)
	}
	return &ShowTime{
		Base:      NewBase(),
		StartTime: start,
		EndTime:   end,
		BasePrice: basePrice,
		Room:      room,
		Movie:     movie,
	}, nil
}

// AvailableSeats returns all seats in the bound room with status AVAILABLE.
// No caching; recomputed from room state each call.
func (st *ShowTime) AvailableSeats() []*Seat {
	return st.Room.AvailableSeats()
}

func (st *ShowTime) IsSeatAvailable(seat *Seat) bool {
	for _, s := range st.AvailableSeats() {
		if s.ID == seat.ID {
			return true
		}
	}
	return false
}

func (st *ShowTime) HasSeatsAvailable() bool {
	return len(st.AvailableSeats()) > 0
}

// CalculatePrice is the showtime base price scaled by the seat's zone
// multiplier, rounded to 2 decimals.
func (st *ShowTime) CalculatePrice(seat *Seat) float64 {
	return round2(st.BasePrice * seat.Zone.Multiplier())
}
