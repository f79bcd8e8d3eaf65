// file: internals/features/orders/service/payment_ledger_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"muaku_backend/internals/features/orders/dto"
	"muaku_backend/internals/features/orders/model"
)

// AddPayment mencatat pembayaran baru pada sebuah order.
//
// Insert payment + update agregat order berjalan dalam SATU transaksi.
// UPDATE agregat diberi guard `total - paid >= amount` sehingga sekaligus
// mengambil row lock order: dua AddPayment bersamaan tidak mungkin sama-sama
// lolos cek sisa tagihan lalu overpay. Nomor pembayaran dibaca setelah lock
// dipegang, jadi urutannya 1,2,3,... tanpa duplikat.
func AddPayment(db *gorm.DB, orderID uuid.UUID, in dto.AddPaymentRequest) (*model.PaymentModel, *model.OrderModel, error) {
	var (
		payment model.PaymentModel
		order   model.OrderModel
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		p, err := addPaymentTx(tx, orderID, in)
		if err != nil {
			return err
		}
		payment = *p

		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &payment, &order, nil
}

// addPaymentTx adalah inti ledger; juga dipakai CreateOrder untuk DP awal.
func addPaymentTx(tx *gorm.DB, orderID uuid.UUID, in dto.AddPaymentRequest) (*model.PaymentModel, error) {
	if in.Amount <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Jumlah pembayaran harus lebih dari 0")
	}

	res := tx.Model(&model.OrderModel{}).
		Where("id = ? AND total_amount - paid_amount >= ?", orderID, in.Amount).
		Updates(map[string]any{
			"paid_amount":      gorm.Expr("paid_amount + ?", in.Amount),
			"remaining_amount": gorm.Expr("total_amount - (paid_amount + ?)", in.Amount),
			"payment_status": gorm.Expr(
				"CASE WHEN total_amount - (paid_amount + ?) <= 0 THEN ? ELSE ? END",
				in.Amount, model.PaymentStatusLunas, model.PaymentStatusBelumLunas,
			),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Bedakan order hilang vs overpay, untuk pesan yang actionable
		var current model.OrderModel
		if err := tx.First(&current, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
			}
			return nil, err
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
			"Jumlah pembayaran Rp %d melebihi sisa tagihan Rp %d",
			in.Amount, current.RemainingAmount,
		))
	}

	// Row lock order sudah dipegang sejak UPDATE di atas
	var nextNumber int
	if err := tx.Model(&model.PaymentModel{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(MAX(payment_number), 0) + 1").
		Scan(&nextNumber).Error; err != nil {
		return nil, err
	}

	paymentDate := time.Now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	payment := model.PaymentModel{
		OrderID:       orderID,
		PaymentNumber: nextNumber,
		Amount:        in.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments mengembalikan ledger satu order, urut nomor pembayaran.
func ListPayments(db *gorm.DB, orderID uuid.UUID) ([]model.PaymentModel, error) {
	var payments []model.PaymentModel
	if err := db.
		Where("order_id = ?", orderID).
		Order("payment_number ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
