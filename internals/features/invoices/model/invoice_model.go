package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const InvoiceStatusPaid = "Paid"

// InvoiceModel: bukti pembayaran yang diturunkan dari satu baris ledger.
// PaymentID unique → maksimal satu invoice per pembayaran; generator
// idempotent mengandalkan constraint ini.
type InvoiceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceNumber string     `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	PaymentID     *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"payment_id,omitempty"`

	Amount     int64  `gorm:"not null" json:"amount"`
	PaidAmount int64  `gorm:"not null" json:"paid_amount"`
	Status     string `gorm:"type:varchar(20);not null;default:'Paid'" json:"status"`

	IssueDate time.Time `gorm:"not null" json:"issue_date"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`

	// Snapshot item order saat invoice dibuat; edit order setelahnya
	// tidak mengubah invoice yang sudah terbit
	ItemsSnapshot datatypes.JSON `gorm:"type:jsonb" json:"items_snapshot,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

func (i *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
