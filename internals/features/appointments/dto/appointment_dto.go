package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientID uuid.UUID  `json:"client_id" validate:"required"`
	Title    string     `json:"title" validate:"required,max=100"`
	Location *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	StartsAt time.Time  `json:"starts_at" validate:"required"`
	EndsAt   time.Time  `json:"ends_at" validate:"required"`
	Notes    *string    `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,max=100"`
	Location *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Status   *string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled done canceled"`
	Notes    *string    `json:"notes,omitempty"`
}
