package dto

import "github.com/aarondl/null/v8"

type CreateOwnerDTO struct {
	FullName string `json:"full_name" validate:"required"`
	Position string `json:"position"`
	PCIP     string `json:"pc_ip"`
	PCName   string `json:"pc_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type UpdateOwnerDTO struct {
	NewFullName string      `json:"full_name" validate:"required"`
	Position    null.String `json:"position"`
	PCIP        null.String `json:"pc_ip"`
	PCName      null.String `json:"pc_name"`
	Phone       null.String `json:"phone"`
	Email       null.String `json:"email"`
}
