package usecase

import (
	"cinema-tickets/internal/data/entity"

	"go.uber.org/zap"
)

// NotificationSender emits booking-related messages. Delivery is
// fire-and-forget: implementations never return errors and the booking flow
// never blocks on them.
type NotificationSender interface {
	SendBookingConfirmation(user *entity.User, booking *entity.Booking)
	SendCancellationNotice(user *entity.User, booking *entity.Booking)
	SendNewMovieAlert(user *entity.User, movie *entity.Movie)
}

// logNotifier writes notifications to the application log. A real dispatch
// channel (email, push) would implement the same interface.
type logNotifier struct {
	log *zap.Logger
}

func NewNotificationSender(log *zap.Logger) NotificationSender {
	return &logNotifier{
		log: log.With(zap.String("service", "notification")),
	}
}

func (n *logNotifier) SendBookingConfirmation(user *entity.User, booking *entity.Booking) {
	if user == nil || booking == nil {
		return
	}
	n.log.Info("Booking confirmation sent",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Contact.Email),
		zap.String("order_id", booking.OrderID),
		zap.String("movie", booking.ShowTime.Movie.Title),
	)
}

func (n *logNotifier) SendCancellationNotice(user *entity.User, booking *entity.Booking) {
	if user == nil || booking == nil {
		return
	}
	n.log.Info("Cancellation notice sent",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Contact.Email),
		zap.String("order_id", booking.OrderID),
	)
}

func (n *logNotifier) SendNewMovieAlert(user *entity.User, movie *entity.Movie) {
	if user == nil || movie == nil {
		return
	}
	n.log.Info("New movie alert sent",
		zap.String("user_id", user.ID.String()),
		zap.String("movie", movie.Title),
	)
}
