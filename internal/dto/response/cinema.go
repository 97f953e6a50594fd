package response

import (
	"cinema-tickets/internal/data/entity"
)

type CinemaResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Rooms   []RoomResponse  `json:"rooms,omitempty"`
	Staff   []StaffResponse `json:"staff,omitempty"`
}

type RoomResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	TotalSeats int            `json:"total_seats"`
	Seats      []SeatResponse `json:"seats,omitempty"`
}

type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

// Helper converters
func CinemaToResponse(cinema *entity.Cinema, includeSeats bool) CinemaResponse {
	resp := CinemaResponse{
		ID:      cinema.ID.String(),
		Name:    cinema.Name,
		Address: cinema.Address,
	}
	for _, room := range cinema.Rooms {
		resp.Rooms = append(resp.Rooms, RoomToResponse(room, includeSeats))
	}
	for _, staff := range cinema.Staff {
		resp.Staff = append(resp.Staff, StaffToResponse(staff))
	}
	return resp
}

func RoomToResponse(room *entity.MovieRoom, includeSeats bool) RoomResponse {
	resp := RoomResponse{
		ID:         room.ID.String(),
		Name:       room.Name,
		TotalSeats: len(room.Seats),
	}
	if includeSeats {
		for _, seat := range room.Seats {
			resp.Seats = append(resp.Seats, SeatToResponse(seat, nil))
		}
	}
	return resp
}

func StaffToResponse(staff *entity.CinemaStaff) StaffResponse {
	return StaffResponse{
		ID:       staff.ID.String(),
		Name:     staff.Contact.Name,
		Email:    staff.Contact.Email,
		Phone:    staff.Contact.Phone,
		Position: staff.Position,
	}
}
