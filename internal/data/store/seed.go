package store

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"

	"go.uber.org/zap"
)

// SeedDemo fills the stores with one cinema, two rooms with a full seat grid,
// a few movies and near-future showtimes. Used for local runs; tests build
// their own fixtures.
func SeedDemo(ctx context.Context, s *Store, log *zap.Logger) error {
	cinema, err := entity.NewCinema("Grand Central Cinema", "1 Main Street")
	if err != nil {
		return err
	}

	rooms := make([]*entity.MovieRoom, 0, 2)
	for i := 1; i <= 2; i++ {
		room, err := entity.NewMovieRoom(fmt.Sprintf("Room %d", i), cinema.ID)
		if err != nil {
			return err
		}
		if err := seedSeats(room); err != nil {
			return err
		}
		cinema.AddRoom(room)
		rooms = append(rooms, room)
	}
	if err := s.Cinema.Create(ctx, cinema); err != nil {
		return err
	}

	movies := []struct {
		title    string
		genres   []string
		duration int
	}{
		{"The Long Night", []string{"Thriller"}, 128},
		{"Paper Planes", []string{"Drama", "Family"}, 101},
		{"Orbit", []string{"Sci-Fi"}, 143},
	}

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	for i, m := range movies {
		movie, err := entity.NewMovie(m.title, "", m.genres, m.duration)
		if err != nil {
			return err
		}
		if err := s.Movie.Create(ctx, movie); err != nil {
			return err
		}

		room := rooms[i%len(rooms)]
		showStart := start.Add(time.Duration(i*3) * time.Hour)
		showtime, err := entity.NewShowTime(showStart, showStart.Add(time.Duration(m.duration)*time.Minute), 10.0, room, movie)
		if err != nil {
			return err
		}
		if err := s.ShowTime.Create(ctx, showtime); err != nil {
			return err
		}
	}

	promo, err := entity.NewPromotion("WELCOME10", 10, "10% off for new customers", true)
	if err != nil {
		return err
	}
	if err := s.Promotion.Create(ctx, promo); err != nil {
		return err
	}

	log.Info("Demo data seeded",
		zap.Int("rooms", len(rooms)),
		zap.Int("movies", len(movies)),
	)
	return nil
}

// seedSeats lays out rows A-E with 8 seats each: A-C standard, D premium,
// E VIP.
func seedSeats(room *entity.MovieRoom) error {
	for _, row := range []string{"A", "B", "C", "D", "E"} {
		zone := entity.ZoneStandard
		switch row {
		case "D":
			zone = entity.ZonePremium
		case "E":
			zone = entity.ZoneVIP
		}
		for n := 1; n <= 8; n++ {
			seat, err := entity.NewSeat(row, n, zone, 10.0)
			if err != nil {
				return err
			}
			room.AddSeat(seat)
		}
	}
	return nil
}
