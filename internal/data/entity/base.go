package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BaseSimple struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// nowFunc is swapped out by tests that need a fixed clock.
var nowFunc = time.Now

// NewBase returns a Base with a fresh ID and both timestamps set to now.
func NewBase() Base {
	now := nowFunc()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewBaseSimple() BaseSimple {
	return BaseSimple{
		ID:        uuid.New(),
		CreatedAt: nowFunc(),
	}
}

// round2 rounds monetary amounts to 2 decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
