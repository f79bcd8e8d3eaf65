package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status pembayaran order
============================== */

const (
	PaymentStatusBelumLunas = "Belum Lunas"
	PaymentStatusLunas      = "Lunas"
)

// OrderModel: pesanan rias satu klien. Kolom agregat (paid/remaining/status)
// tidak punya sumber kebenaran sendiri — selalu sejalan dengan ledger payments,
// dijaga oleh transaksi di service.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string    `gorm:"size:30;uniqueIndex;not null" json:"order_number"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	// Nominal dalam rupiah utuh
	TotalAmount     int64 `gorm:"not null;default:0" json:"total_amount"`
	PaidAmount      int64 `gorm:"not null;default:0" json:"paid_amount"`
	RemainingAmount int64 `gorm:"not null;default:0" json:"remaining_amount"`

	PaymentStatus string `gorm:"type:varchar(20);not null;default:'Belum Lunas'" json:"payment_status"`

	EventDate *time.Time `gorm:"type:date" json:"event_date,omitempty"`
	Notes     *string    `gorm:"type:text" json:"notes,omitempty"`

	Items    []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payments []PaymentModel   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// Generate ID di sisi aplikasi juga, supaya tidak bergantung gen_random_uuid()
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Quantity int       `gorm:"not null;default:1" json:"quantity"`
	Price    int64     `gorm:"not null" json:"price"`
	Total    int64     `gorm:"not null" json:"total"` // quantity * price

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

func (i *OrderItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
