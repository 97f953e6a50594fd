package request

type CreateMovieRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=200"`
	Description       string   `json:"description,omitempty" validate:"max=2000"`
	Genres            []string `json:"genres,omitempty" validate:"dive,min=1"`
	DurationInMinutes int      `json:"duration_in_minutes" validate:"required,min=1"`
}

type CreateShowTimeRequest struct {
	MovieID   string  `json:"movie_id" validate:"required,uuid4"`
	RoomID    string  `json:"room_id" validate:"required,uuid4"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	BasePrice float64 `json:"base_price" validate:"min=0"`
}
