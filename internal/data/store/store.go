package store

import (
	"go.uber.org/zap"
)

// Store groups every in-memory store the services need. It is created once
// per process in main and once per test in suites; there is no process-wide
// registry.
type Store struct {
	User      UserStore
	Session   SessionStore
	Movie     MovieStore
	Cinema    CinemaStore
	ShowTime  ShowTimeStore
	Booking   BookingStore
	Promotion PromotionStore
	Review    ReviewStore
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		User:      NewUserStore(log),
		Session:   NewSessionStore(log),
		Movie:     NewMovieStore(log),
		Cinema:    NewCinemaStore(log),
		ShowTime:  NewShowTimeStore(log),
		Booking:   NewBookingStore(log),
		Promotion: NewPromotionStore(log),
		Review:    NewReviewStore(log),
	}
}
