package entity

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var contactValidate = validator.New()

// Contact is the shared contactable-actor capability: name, email and phone
// with common validation. User and CinemaStaff both embed it instead of
// inheriting from a person base type.
type Contact struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
}

func NewContact(name, email, phone string) (Contact, error) {
	c := Contact{Name: name, Email: email, Phone: phone}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (c Contact) Validate() error {
	if err := contactValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	digits := 0
	for _, r := range c.Phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 10 || digits > 12 {
		return fmt.Errorf("%w: phone number must have 10 to 12 digits", ErrValidation)
	}
	return nil
}

// Update replaces the contact details after validating the new values.
func (c *Contact) Update(name, email, phone string) error {
	next := Contact{Name: name, Email: email, Phone: phone}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
