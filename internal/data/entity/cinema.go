package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Cinema is the venue directory entry: rooms and staff, plain CRUD. The
// booking core never mutates cinema identity, only seat status within rooms.
type Cinema struct {
	Base
	Name    string
	Address string
	Rooms   []*MovieRoom
	Staff   []*CinemaStaff
}

func NewCinema(name, address string) (*Cinema, error) {
	if name == "" || address == "" {
		return nil, fmt.Errorf("%w: cinema name and address are required", ErrValidation)
	}
	return &Cinema{
		Base:    NewBase(),
		Name:    name,
		Address: address,
	}, nil
}

func (c *Cinema) AddRoom(room *MovieRoom) {
	room.CinemaID = c.ID
	c.Rooms = append(c.Rooms, room)
}

func (c *Cinema) FindRoom(roomID uuid.UUID) *MovieRoom {
	for _, room := range c.Rooms {
		if room.ID == roomID {
			return room
		}
	}
	return nil
}

func (c *Cinema) AddStaff(staff *CinemaStaff) {
	c.Staff = append(c.Staff, staff)
}

func (c *Cinema) RemoveStaff(staffID uuid.UUID) error {
	for i, s := range c.Staff {
		if s.ID == staffID {
			c.Staff = append(c.Staff[:i], c.Staff[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: staff %s", ErrNotFound, staffID)
}

// CinemaStaff shares the Contact capability with User instead of inheriting
// from a common person type.
type CinemaStaff struct {
	Base
	Contact  Contact
	Position string
	CinemaID uuid.UUID
}

func NewCinemaStaff(contact Contact, position string, cinemaID uuid.UUID) (*CinemaStaff, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if position == "" {
		return nil, fmt.Errorf("%w: staff position is required", ErrValidation)
	}
	return &CinemaStaff{
		Base:     NewBase(),
		Contact:  contact,
		Position: position,
		CinemaID: cinemaID,
	}, nil
}
