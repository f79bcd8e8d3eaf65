package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status jadwal
============================== */

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusDone      = "done"
	AppointmentStatusCanceled  = "canceled"
)

// AppointmentModel: jadwal rias/fitting di kalender vendor.
type AppointmentModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	Title    string  `gorm:"size:100;not null" json:"title"`
	Location *string `gorm:"size:255" json:"location,omitempty"`

	StartsAt time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	Status string  `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

func (a *AppointmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
