// file: internals/features/orders/service/order_service.go
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
	helper "muaku_backend/internals/helpers"
)

// CreateOrder membuat order + item + (opsional) DP awal dalam satu transaksi.
func CreateOrder(db *gorm.DB, in dto.CreateOrderRequest) (*model.OrderModel, error) {
	var created model.OrderModel

	err := db.Transaction(func(tx *gorm.DB) error {
		items, total := buildItems(in.Items)

		order := model.OrderModel{
			ClientID:        in.ClientID,
			TotalAmount:     total,
			PaidAmount:      0,
			RemainingAmount: total,
			PaymentStatus:   model.PaymentStatusBelumLunas,
			EventDate:       in.EventDate,
			Notes:           in.Notes,
			Items:           items,
		}

		if err := createWithNumberRetry(tx, &order); err != nil {
			return err
		}

		if in.InitialPayment != nil {
			if _, err := addPaymentTx(tx, order.ID, *in.InitialPayment); err != nil {
				return err
			}
		}

		return tx.Preload("Items").Preload("Payments").First(&created, "id = ?", order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// createWithNumberRetry memberi nomor order count+1 lalu create. Nomor hanya
// kosmetik, tapi unique index + satu kali retry mencegah duplikat saat balapan.
// Setiap attempt dibungkus savepoint: di Postgres statement yang gagal membuat
// seluruh transaksi abort, tanpa rollback ke savepoint retry-nya tidak bisa jalan.
func createWithNumberRetry(tx *gorm.DB, order *model.OrderModel) error {
	for attempt := 0; attempt < 2; attempt++ {
		number, err := nextOrderNumber(tx)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := tx.SavePoint("sp_order_number").Error; err != nil {
			return err
		}
		err = tx.Create(order).Error
		if err == nil {
			return nil
		}
		if !helper.IsUniqueViolation(err) {
			return err
		}
		if rbErr := tx.RollbackTo("sp_order_number").Error; rbErr != nil {
			return rbErr
		}
		if attempt == 1 {
			return fiber.NewError(fiber.StatusConflict, "Nomor order bentrok, silakan coba lagi")
		}
	}
	return nil
}

func nextOrderNumber(tx *gorm.DB) (string, error) {
	var count int64
	if err := tx.Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), count+1), nil
}

func buildItems(inputs []dto.OrderItemInput) ([]model.OrderItemModel, int64) {
	items := make([]model.OrderItemModel, 0, len(inputs))
	var total int64
	for _, it := range inputs {
		lineTotal := int64(it.Quantity) * it.Price
		items = append(items, model.OrderItemModel{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Total:    lineTotal,
		})
		total += lineTotal
	}
	return items, total
}

// GetOrder memuat order lengkap dengan item + ledger.
func GetOrder(db *gorm.DB, orderID uuid.UUID) (*model.OrderModel, error) {
	var order model.OrderModel
	if err := db.
		Preload("Items").
		Preload("Payments", func(q *gorm.DB) *gorm.DB { return q.Order("payment_number ASC") }).
		First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderItems mengganti item order lalu menghitung ulang agregat.
// remaining = total - paid harus tetap berlaku setelah edit langsung.
func UpdateOrderItems(db *gorm.DB, orderID uuid.UUID, in dto.UpdateOrderItemsRequest) (*model.OrderModel, error) {
	var updated model.OrderModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var order model.OrderModel
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
			}
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}

		items, total := buildItems(in.Items)
		for i := range items {
			items[i].OrderID = orderID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		remaining := total - order.PaidAmount
		status := model.PaymentStatusBelumLunas
		if remaining <= 0 {
			status = model.PaymentStatusLunas
		}

		if err := tx.Model(&model.OrderModel{}).
			Where("id = ?", orderID).
			Updates(map[string]any{
				"total_amount":     total,
				"remaining_amount": remaining,
				"payment_status":   status,
			}).Error; err != nil {
			return err
		}

		return tx.Preload("Items").First(&updated, "id = ?", orderID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOrder hanya boleh untuk order yang belum punya pembayaran —
// ledger append-only, menghapus order berledger berarti menghapus riwayat.
func DeleteOrder(db *gorm.DB, orderID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var paymentCount int64
		if err := tx.Model(&model.PaymentModel{}).
			Where("order_id = ?", orderID).
			Count(&paymentCount).Error; err != nil {
			return err
		}
		if paymentCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Order dengan pembayaran tidak bisa dihapus")
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.OrderModel{}, "id = ?", orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return nil
	})
}
