package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentModel: ledger append-only. Baris tidak pernah diubah/dihapus;
// koreksi dilakukan lewat pembayaran baru.
type PaymentModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_order_payment_no,priority:1" json:"order_id"`

	// Nomor urut per order, mulai 1
	PaymentNumber int `gorm:"not null;uniqueIndex:uniq_order_payment_no,priority:2" json:"payment_number"`

	Amount        int64     `gorm:"not null" json:"amount"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	PaymentMethod string    `gorm:"size:30;not null" json:"payment_method"`
	Notes         *string   `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
