package request

type CreateCinemaRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required,min=1,max=500"`
}

type AddRoomRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type AddSeatRequest struct {
	Row    string  `json:"row" validate:"required,min=1,max=5"`
	Number int     `json:"number" validate:"required,min=1"`
	Zone   string  `json:"zone" validate:"required,oneof=STANDARD PREMIUM VIP"`
	Price  float64 `json:"price" validate:"min=0"`
}

type AddStaffRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=16"`
	Position string `json:"position" validate:"required,min=1,max=100"`
}

type UpdateSeatStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE BOOKED RESERVED"`
}
