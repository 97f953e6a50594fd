package usecase

import (
	"cinema-tickets/internal/data/store"
	"cinema-tickets/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Movie     MovieService
	Cinema    CinemaService
	Booking   BookingService
	Promotion PromotionService
	Review    ReviewService
}

func NewService(st *store.Store, config *utils.Config, log *zap.Logger) *Service {
	notifier := NewNotificationSender(log)
	return &Service{
		Auth:      NewAuthService(st, config, log),
		User:      NewUserService(st.User, log),
		Movie:     NewMovieService(st, notifier, log),
		Cinema:    NewCinemaService(st, log),
		Booking:   NewBookingService(st, notifier, log),
		Promotion: NewPromotionService(st.Promotion, log),
		Review:    NewReviewService(st, log),
	}
}
