package entity

import (
	"fmt"
	"strings"
)

type Movie struct {
	Base
	Title             string
	Description       string
	Genres            []string
	DurationInMinutes int
	Rating            float64
}

func NewMovie(title, description string, genres []string, durationMinutes int) (*Movie, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: movie title is required", ErrValidation)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: movie duration must be positive", ErrValidation)
	}
	return &Movie{
		Base:              NewBase(),
		Title:             title,
		Description:       description,
		Genres:            genres,
		DurationInMinutes: durationMinutes,
	}, nil
}

func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
