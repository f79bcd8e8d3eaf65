package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderItemInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Price    int64  `json:"price" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	ClientID  uuid.UUID        `json:"client_id" validate:"required"`
	EventDate *time.Time       `json:"event_date,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`

	// Opsional: DP langsung saat order dibuat
	InitialPayment *AddPaymentRequest `json:"initial_payment,omitempty"`
}

type UpdateOrderItemsRequest struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type AddPaymentRequest struct {
	Amount        int64      `json:"amount" validate:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=cash transfer qris debit credit"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}
