package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateMovieAndShowTime(t *testing.T) {
	ctx := context.Background()
	st := store.NewStore(zap.NewNop())
	service := NewMovieService(st, NewNotificationSender(zap.NewNop()), zap.NewNop())

	cinema, err := entity.NewCinema("Grand Central Cinema", "1 Main Street")
	require.NoError(t, err)
	room, err := entity.NewMovieRoom("Room 1", cinema.ID)
	require.NoError(t, err)
	seat, err := entity.NewSeat("A", 1, entity.ZoneVIP, 10)
	require.NoError(t, err)
	room.AddSeat(seat)
	cinema.AddRoom(room)
	require.NoError(t, st.Cinema.Create(ctx, cinema))

	movie, err := service.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:             "Orbit",
		Genres:            []string{"Sci-Fi"},
		DurationInMinutes: 143,
	})
	require.NoError(t, err)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	showtime, err := service.CreateShowTime(ctx, &request.CreateShowTimeRequest{
		MovieID:   movie.ID,
		RoomID:    room.ID.String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(143 * time.Minute).Format(time.RFC3339),
		BasePrice: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Orbit", showtime.MovieTitle)

	listed, err := service.ListShowTimes(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// Seat view reports the zone-scaled price for this screening.
	seats, err := service.GetShowTimeSeats(ctx, showtime.ID)
	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Equal(t, 15.0, seats[0].Price)
}

func TestCreateShowTimeBadTimes(t *testing.T) {
	ctx := context.Background()
	st := store.NewStore(zap.NewNop())
	service := NewMovieService(st, NewNotificationSender(zap.NewNop()), zap.NewNop())

	cinema, err := entity.NewCinema("Grand Central Cinema", "1 Main Street")
	require.NoError(t, err)
	room, err := entity.NewMovieRoom("Room 1", cinema.ID)
	require.NoError(t, err)
	cinema.AddRoom(room)
	require.NoError(t, st.Cinema.Create(ctx, cinema))

	movie, err := service.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:             "Orbit",
		DurationInMinutes: 143,
	})
	require.NoError(t, err)

	start := time.Now().Add(24 * time.Hour)

	_, err = service.CreateShowTime(ctx, &request.CreateShowTimeRequest{
		MovieID:   movie.ID,
		RoomID:    room.ID.String(),
		StartTime: "not-a-time",
		EndTime:   start.Format(time.RFC3339),
		BasePrice: 10,
	})
	assert.ErrorIs(t, err, entity.ErrValidation)

	// End before start is rejected by the entity.
	_, err = service.CreateShowTime(ctx, &request.CreateShowTimeRequest{
		MovieID:   movie.ID,
		RoomID:    room.ID.String(),
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(-time.Hour).Format(time.RFC3339),
		BasePrice: 10,
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestListMoviesFilter(t *testing.T) {
	ctx := context.Background()
	st := store.NewStore(zap.NewNop())
	service := NewMovieService(st, NewNotificationSender(zap.NewNop()), zap.NewNop())

	for _, title := range []string{"The Long Night", "Paper Planes"} {
		_, err := service.CreateMovie(ctx, &request.CreateMovieRequest{
			Title:             title,
			DurationInMinutes: 120,
		})
		require.NoError(t, err)
	}

	page, err := service.ListMovies(ctx, store.MovieFilter{Title: "paper"}, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Paper Planes", page.Data[0].Title)

	_, err = service.GetMovie(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrValidation)
}
