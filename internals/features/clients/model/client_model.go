package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientModel: calon pengantin / pemesan jasa rias.
type ClientModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Phone       string     `gorm:"size:20;not null" json:"phone"`
	Email       *string    `gorm:"size:255" json:"email,omitempty"`
	Address     *string    `gorm:"type:text" json:"address,omitempty"`
	WeddingDate *time.Time `gorm:"type:date" json:"wedding_date,omitempty"`
	Notes       *string    `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClientModel) TableName() string {
	return "clients"
}

func (cl *ClientModel) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return nil
}
