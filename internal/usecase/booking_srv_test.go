package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	store    *store.Store
	service  BookingService
	user     *entity.User
	showtime *entity.ShowTime
}

// newBookingFixture builds a store with one user and one near-future showtime
// in a 3-seat room: A1 standard, D1 premium, E1 VIP, base price 10.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	st := store.NewStore(zap.NewNop())

	contact, err := entity.NewContact("Jordan Lee", "jordan@example.com", "081234567890")
	require.NoError(t, err)
	user, err := entity.NewUser(contact, "jordanlee", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, st.User.Create(ctx, user))

	cinema, err := entity.NewCinema("Grand Central Cinema", "1 Main Street")
	require.NoError(t, err)
	room, err := entity.NewMovieRoom("Room 1", cinema.ID)
	require.NoError(t, err)
	for _, s := range []struct {
		row  string
		zone entity.SeatZone
	}{
		{"A", entity.ZoneStandard},
		{"D", entity.ZonePremium},
		{"E", entity.ZoneVIP},
	} {
		seat, err := entity.NewSeat(s.row, 1, s.zone, 10.0)
		require.NoError(t, err)
		room.AddSeat(seat)
	}
	cinema.AddRoom(room)
	require.NoError(t, st.Cinema.Create(ctx, cinema))

	movie, err := entity.NewMovie("The Long Night", "", []string{"Thriller"}, 128)
	require.NoError(t, err)
	require.NoError(t, st.Movie.Create(ctx, movie))

	start := time.Now().Add(48 * time.Hour)
	showtime, err := entity.NewShowTime(start, start.Add(2*time.Hour), 10.0, room, movie)
	require.NoError(t, err)
	require.NoError(t, st.ShowTime.Create(ctx, showtime))

	promo, err := entity.NewPromotion("WELCOME10", 10, "10% off", true)
	require.NoError(t, err)
	require.NoError(t, st.Promotion.Create(ctx, promo))

	return &bookingFixture{
		store:    st,
		service:  NewBookingService(st, NewNotificationSender(zap.NewNop()), zap.NewNop()),
		user:     user,
		showtime: showtime,
	}
}

func (f *bookingFixture) seat(t *testing.T, label string) *entity.Seat {
	t.Helper()
	for _, seat := range f.showtime.Room.Seats {
		if seat.Label() == label {
			return seat
		}
	}
	t.Fatalf("no seat %s", label)
	return nil
}

func (f *bookingFixture) createRequest(seatIDs ...string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ShowTimeID:    f.showtime.ID.String(),
		SeatIDs:       seatIDs,
		PaymentMethod: "Credit Card",
	}
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req := f.createRequest(f.seat(t, "A1").ID.String(), f.seat(t, "E1").ID.String())
	booking, err := f.service.CreateBooking(ctx, f.user.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Len(t, booking.Tickets, 2)
	require.NotNil(t, booking.Payment)
	// Subtotal 10 + 15, plus 2 flat fee and 5% tax on 25.
	assert.Equal(t, 28.25, booking.Payment.Total)
	assert.Equal(t, entity.PaymentStatusComplete, booking.Payment.Status)

	assert.Equal(t, entity.SeatBooked, f.seat(t, "A1").Status)
	assert.Equal(t, entity.SeatBooked, f.seat(t, "E1").Status)
	assert.Equal(t, entity.SeatAvailable, f.seat(t, "D1").Status)

	// The booking lands in the user's history.
	require.Len(t, f.user.History.Bookings, 1)
	assert.Equal(t, booking.OrderID, f.user.History.Bookings[0].OrderID)
}

func TestCreateBookingWithPromo(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req := f.createRequest(f.seat(t, "A1").ID.String(), f.seat(t, "E1").ID.String())
	req.PromoCode = "WELCOME10"

	booking, err := f.service.CreateBooking(ctx, f.user.ID.String(), req)
	require.NoError(t, err)

	// 25 discounted to 22.50, plus 2 fee and 1.13 tax.
	assert.Equal(t, 25.63, booking.Payment.Total)
}

func TestCreateBookingInvalidPromo(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	req := f.createRequest(f.seat(t, "A1").ID.String())
	req.PromoCode = "NOPE"

	_, err := f.service.CreateBooking(ctx, f.user.ID.String(), req)
	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.Equal(t, entity.SeatAvailable, f.seat(t, "A1").Status)
}

func TestCreateBookingSeatTaken(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	seatID := f.seat(t, "A1").ID.String()
	_, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(seatID))
	require.NoError(t, err)

	_, err = f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(seatID))
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)
}

func TestCreateBookingNoPartialState(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	taken := f.seat(t, "E1")
	_, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(taken.ID.String()))
	require.NoError(t, err)

	// A1 is free but E1 is taken; the request must fail without touching A1.
	_, err = f.service.CreateBooking(ctx, f.user.ID.String(),
		f.createRequest(f.seat(t, "A1").ID.String(), taken.ID.String()))
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)
	assert.Equal(t, entity.SeatAvailable, f.seat(t, "A1").Status)

	// Only the first booking exists.
	count, err := f.store.Booking.CountByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateBookingSeatNotInRoom(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	foreign, err := entity.NewSeat("Z", 9, entity.ZoneStandard, 10)
	require.NoError(t, err)

	_, err = f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(foreign.ID.String()))
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateBookingFullShowtime(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	for _, seat := range f.showtime.Room.Seats {
		require.NoError(t, seat.Book())
	}

	_, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	assert.ErrorIs(t, err, entity.ErrNoSeatsAvailable)
}

// TestCreateBookingConcurrent races many goroutines over a single seat. The
// showtime lock must let exactly one of them win.
func TestCreateBookingConcurrent(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	seatID := f.seat(t, "A1").ID.String()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(seatID))
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, entity.ErrSeatUnavailable)
		}
	}
	assert.Equal(t, 1, won)

	count, err := f.store.Booking.CountByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCancelBooking(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)

	cancelled, err := f.service.CancelBooking(ctx, f.user.ID.String(), created.ID, "change of plans", false)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.Cancellation)
	assert.Equal(t, "change of plans", cancelled.Cancellation.Reason)
	assert.Equal(t, entity.PaymentStatusCancelled, cancelled.Payment.Status)

	// Seat is bookable again.
	assert.Equal(t, entity.SeatAvailable, f.seat(t, "A1").Status)
	_, err = f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)

	// Cancelling twice is rejected.
	_, err = f.service.CancelBooking(ctx, f.user.ID.String(), created.ID, "", false)
	assert.ErrorIs(t, err, entity.ErrCannotCancel)
}

func TestCancelBookingOwnership(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	contact, err := entity.NewContact("Sam Reyes", "sam@example.com", "081234567891")
	require.NoError(t, err)
	other, err := entity.NewUser(contact, "samreyes", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, f.store.User.Create(ctx, other))

	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)

	_, err = f.service.CancelBooking(ctx, other.ID.String(), created.ID, "", false)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	// Admins may cancel anyone's booking.
	_, err = f.service.CancelBooking(ctx, other.ID.String(), created.ID, "staff action", true)
	require.NoError(t, err)
}

func TestGetHistoryPartition(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)
	_, err = f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "D1").ID.String()))
	require.NoError(t, err)

	history, err := f.service.GetHistory(ctx, f.user.ID.String())
	require.NoError(t, err)
	assert.Len(t, history.Upcoming, 2)
	assert.Empty(t, history.Past)

	// Cancelling moves a booking to the past partition even though its
	// showtime has not started.
	_, err = f.service.CancelBooking(ctx, f.user.ID.String(), created.ID, "", false)
	require.NoError(t, err)

	history, err = f.service.GetHistory(ctx, f.user.ID.String())
	require.NoError(t, err)
	assert.Len(t, history.Upcoming, 1)
	assert.Len(t, history.Past, 1)
}

func TestGetUserBookingsPagination(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	for _, label := range []string{"A1", "D1", "E1"} {
		_, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, label).ID.String()))
		require.NoError(t, err)
	}

	page, err := f.service.GetUserBookings(ctx, f.user.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.EqualValues(t, 3, page.Pagination.Total)

	page, err = f.service.GetUserBookings(ctx, f.user.ID.String(), &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
}

func TestGetBookingByIDOwnership(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)

	found, err := f.service.GetBookingByID(ctx, f.user.ID.String(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, created.OrderID, found.OrderID)

	contact, err := entity.NewContact("Sam Reyes", "sam@example.com", "081234567891")
	require.NoError(t, err)
	other, err := entity.NewUser(contact, "samreyes", "hashed-password", entity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, f.store.User.Create(ctx, other))

	_, err = f.service.GetBookingByID(ctx, other.ID.String(), created.ID, false)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = f.service.GetBookingByID(ctx, other.ID.String(), created.ID, true)
	require.NoError(t, err)
}

func TestTicketLifecycle(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	seat := f.seat(t, "A1")
	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(seat.ID.String()))
	require.NoError(t, err)
	require.Len(t, created.Tickets, 1)

	// The seat already has its ticket from booking creation.
	_, err = f.service.GenerateTicket(ctx, f.user.ID.String(), created.ID,
		&request.GenerateTicketRequest{SeatID: seat.ID.String()})
	assert.ErrorIs(t, err, entity.ErrDuplicate)

	require.NoError(t, f.service.RemoveTicket(ctx, f.user.ID.String(), created.ID, created.Tickets[0].ID))

	ticket, err := f.service.GenerateTicket(ctx, f.user.ID.String(), created.ID,
		&request.GenerateTicketRequest{SeatID: seat.ID.String()})
	require.NoError(t, err)
	assert.Contains(t, ticket.QRCode, "QR-")
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)

	payment, err := f.service.UpdatePaymentStatus(ctx, created.ID,
		&request.UpdatePaymentStatusRequest{Status: "FAILED"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)

	_, err = f.service.UpdatePaymentStatus(ctx, created.ID,
		&request.UpdatePaymentStatusRequest{Status: "REFUNDED"})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestUpdateBookingStatus(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateBooking(ctx, f.user.ID.String(), f.createRequest(f.seat(t, "A1").ID.String()))
	require.NoError(t, err)

	require.NoError(t, f.service.UpdateBookingStatus(ctx, created.ID, "PENDING"))

	found, err := f.service.GetBookingByID(ctx, f.user.ID.String(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, found.Status)

	err = f.service.UpdateBookingStatus(ctx, created.ID, "UNKNOWN")
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
}
