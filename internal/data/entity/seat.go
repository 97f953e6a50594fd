package entity

import (
	"fmt"
)

type SeatZone string

const (
	ZoneStandard SeatZone = "STANDARD"
	ZonePremium  SeatZone = "PREMIUM"
	ZoneVIP      SeatZone = "VIP"
)

// Multiplier returns the pricing factor for the zone. Unknown zones fall back
// to the standard rate.
func (z SeatZone) Multiplier() float64 {
	switch z {
	case ZoneVIP:
		return 1.5
	case ZonePremium:
		return 1.2
	default:
		return 1.0
	}
}

func (z SeatZone) Valid() bool {
	switch z {
	case ZoneStandard, ZonePremium, ZoneVIP:
		return true
	}
	return false
}

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatBooked    SeatStatus = "BOOKED"
	SeatReserved  SeatStatus = "RESERVED"
)

func (s SeatStatus) Valid() bool {
	switch s {
	case SeatAvailable, SeatBooked, SeatReserved:
		return true
	}
	return false
}

// Seat is a bookable unit inside a movie room. Its status is mutated only by
// the booking flow (book on confirm, release on cancel) or the admin seat
// endpoint; seats are reused across showtimes in the same room.
type Seat struct {
	Base
	Row    string
	Number int
	Zone   SeatZone
	Price  float64
	Status SeatStatus
	Room   *MovieRoom
}

func NewSeat(row string, number int, zone SeatZone, price float64) (*Seat, error) {
	if row == "" || number <= 0 {
		return nil, fmt.Errorf("%w: seat row and number are required", ErrValidation)
	}
	if !zone.Valid() {
		return nil, fmt.Errorf("%w: unknown seat zone %q", ErrValidation, zone)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: seat price must be non-negative", ErrValidation)
	}
	return &Seat{
		Base:   NewBase(),
		Row:    row,
		Number: number,
		Zone:   zone,
		Price:  price,
		Status: SeatAvailable,
	}, nil
}

// Label returns the display label, e.g. "A1".
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Number)
}

func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

// Book transitions the seat AVAILABLE -> BOOKED. Idempotent when the seat is
// already booked, so re-confirming a booking cannot corrupt state.
func (s *Seat) Book() error {
	if s.Status == SeatBooked {
		return nil
	}
	if s.Status != SeatAvailable {
		return fmt.Errorf("%w: seat %s is %s", ErrSeatUnavailable, s.Label(), s.Status)
	}
	s.Status = SeatBooked
	return nil
}

// Release returns the seat to AVAILABLE regardless of its current state.
func (s *Seat) Release() {
	s.Status = SeatAvailable
}

// SetStatus is the administrative status override. It rejects values outside
// the closed enum with ErrInvalidStatus.
func (s *Seat) SetStatus(status SeatStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q is not a seat status", ErrInvalidStatus, status)
	}
	s.Status = status
	return nil
}
