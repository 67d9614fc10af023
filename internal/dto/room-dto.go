package dto

import "github.com/aarondl/null/v8"

type CreateRoomDTO struct {
	Name     string `json:"room_name" validate:"required"`
	MaxSeats int    `json:"max_seats" validate:"gte=0"`
}

type UpdateRoomDTO struct {
	NewName  string   `json:"room_name" validate:"required"`
	MaxSeats null.Int `json:"max_seats"`
}
