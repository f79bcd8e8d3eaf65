package dto

import "time"

type CreateClientRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Phone       string     `json:"phone" validate:"required,max=20"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string    `json:"address,omitempty"`
	WeddingDate *time.Time `json:"wedding_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type UpdateClientRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,max=100"`
	Phone       *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string    `json:"address,omitempty"`
	WeddingDate *time.Time `json:"wedding_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}
