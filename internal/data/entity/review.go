package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID  uuid.UUID
	MovieID uuid.UUID
	Rating  float64 // 0-5
	Comment string
}

func NewReview(userID, movieID uuid.UUID, rating float64, comment string) (*Review, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	return &Review{
		BaseSimple: NewBaseSimple(),
		UserID:     userID,
		MovieID:    movieID,
		Rating:     rating,
		Comment:    comment,
	}, nil
}

func (r *Review) Update(rating float64, comment string) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	r.Rating = rating
	r.Comment = comment
	return nil
}
