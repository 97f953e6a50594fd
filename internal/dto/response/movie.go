package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
)

type MovieResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	Genres            []string `json:"genres,omitempty"`
	DurationInMinutes int      `json:"duration_in_minutes"`
	Rating            float64  `json:"rating"`
}

type ShowTimeResponse struct {
	ID             string    `json:"id"`
	MovieID        string    `json:"movie_id"`
	MovieTitle     string    `json:"movie_title"`
	RoomID         string    `json:"room_id"`
	RoomName       string    `json:"room_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	BasePrice      float64   `json:"base_price"`
	AvailableSeats int       `json:"available_seats"`
}

type SeatResponse struct {
	ID     string            `json:"id"`
	Label  string            `json:"label"`
	Row    string            `json:"row"`
	Number int               `json:"number"`
	Zone   entity.SeatZone   `json:"zone"`
	Price  float64           `json:"price"`
	Status entity.SeatStatus `json:"status"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		Genres:            movie.Genres,
		DurationInMinutes: movie.DurationInMinutes,
		Rating:            movie.Rating,
	}
}

func ShowTimeToResponse(showtime *entity.ShowTime) ShowTimeResponse {
	return ShowTimeResponse{
		ID:             showtime.ID.String(),
		MovieID:        showtime.Movie.ID.String(),
		MovieTitle:     showtime.Movie.Title,
		RoomID:         showtime.Room.ID.String(),
		RoomName:       showtime.Room.Name,
		StartTime:      showtime.StartTime,
		EndTime:        showtime.EndTime,
		BasePrice:      showtime.BasePrice,
		AvailableSeats: len(showtime.AvailableSeats()),
	}
}

// SeatToResponse prices the seat for a specific showtime when one is given;
// otherwise it reports the seat's own base price.
func SeatToResponse(seat *entity.Seat, showtime *entity.ShowTime) SeatResponse {
	price := seat.Price
	if showtime != nil {
		price = showtime.CalculatePrice(seat)
	}
	return SeatResponse{
		ID:     seat.ID.String(),
		Label:  seat.Label(),
		Row:    seat.Row,
		Number: seat.Number,
		Zone:   seat.Zone,
		Price:  price,
		Status: seat.Status,
	}
}
