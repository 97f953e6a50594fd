package request

type CreateReviewRequest struct {
	MovieID string  `json:"movie_id" validate:"required,uuid4"`
	Rating  float64 `json:"rating" validate:"min=0,max=5"`
	Comment string  `json:"comment,omitempty" validate:"max=2000"`
}

type UpdateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"min=0,max=5"`
	Comment string  `json:"comment,omitempty" validate:"max=2000"`
}
