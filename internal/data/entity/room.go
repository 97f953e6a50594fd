package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// MovieRoom is a screening room inside a cinema. It owns the seats; showtimes
// derive their availability from the room.
type MovieRoom struct {
	Base
	Name     string
	CinemaID uuid.UUID
	Seats    []*Seat
}

func NewMovieRoom(name string, cinemaID uuid.UUID) (*MovieRoom, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrValidation)
	}
	return &MovieRoom{
		Base:     NewBase(),
		Name:     name,
		CinemaID: cinemaID,
	}, nil
}

// AddSeat attaches the seat to the room and sets its back-reference.
func (r *MovieRoom) AddSeat(seat *Seat) {
	seat.Room = r
	r.Seats = append(r.Seats, seat)
}

// AvailableSeats is recomputed from seat state on every call; seat status
// changes independently of the room.
func (r *MovieRoom) AvailableSeats() []*Seat {
	available := make([]*Seat, 0, len(r.Seats))
	for _, seat := range r.Seats {
		if seat.IsAvailable() {
			available = append(available, seat)
		}
	}
	return available
}

func (r *MovieRoom) FindSeat(id uuid.UUID) *Seat {
	for _, seat := range r.Seats {
		if seat.ID == id {
			return seat
		}
	}
	return nil
}
