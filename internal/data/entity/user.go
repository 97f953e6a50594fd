package entity

import (
	"fmt"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User is the booking-initiating actor. It owns its BookingHistory for its
// whole lifetime; the history is created together with the user.
type User struct {
	Base
	Contact      Contact
	Username     string
	PasswordHash string
	Role         UserRole
	History      *BookingHistory
	IsActive     bool
}

func NewUser(contact Contact, username, passwordHash string, role UserRole) (*User, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if len(username) < 5 {
		return nil, fmt.Errorf("%w: username must be at least 5 characters", ErrValidation)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", ErrValidation)
	}
	u := &User{
		Base:         NewBase(),
		Contact:      contact,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}
	u.History = NewBookingHistory(u.ID)
	return u, nil
}
