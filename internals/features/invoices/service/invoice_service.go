// file: internals/features/invoices/service/invoice_service.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"muaku_backend/internals/features/invoices/model"
	orderModel "muaku_backend/internals/features/orders/model"
	helper "muaku_backend/internals/helpers"
)

const defaultDueInDays = 7

// GenerateForLatestPayment menerbitkan invoice untuk pembayaran terakhir
// sebuah order. Idempotent: kalau pembayaran itu sudah punya invoice,
// invoice lama dikembalikan apa adanya — aman dipanggil berulang
// (mis. request klien yang di-retry).
func GenerateForLatestPayment(db *gorm.DB, orderID uuid.UUID, dueInDays int) (*model.InvoiceModel, error) {
	if dueInDays <= 0 {
		dueInDays = defaultDueInDays
	}

	var invoice model.InvoiceModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var payment orderModel.PaymentModel
		if err := tx.
			Where("order_id = ?", orderID).
			Order("payment_number DESC").
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Belum ada pembayaran untuk dibuatkan invoice")
			}
			return err
		}

		// Sudah pernah dibuat? Kembalikan yang lama.
		var existing model.InvoiceModel
		err := tx.Where("payment_id = ?", payment.ID).First(&existing).Error
		if err == nil {
			invoice = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		snapshot, err := itemsSnapshot(tx, orderID)
		if err != nil {
			return err
		}

		issueDate := time.Now()
		created := model.InvoiceModel{
			OrderID:       orderID,
			PaymentID:     &payment.ID,
			Amount:        payment.Amount,
			PaidAmount:    payment.Amount,
			Status:        model.InvoiceStatusPaid,
			IssueDate:     issueDate,
			DueDate:       issueDate.AddDate(0, 0, dueInDays),
			ItemsSnapshot: snapshot,
		}

		if err := createWithNumberRetry(tx, &created); err != nil {
			if helper.IsUniqueViolation(err) {
				// Balapan generate untuk payment yang sama: unique index
				// payment_id menang, ambil invoice pemenangnya.
				if ferr := tx.Where("payment_id = ?", payment.ID).First(&existing).Error; ferr == nil {
					invoice = existing
					return nil
				}
				// Bukan balapan payment: nomornya yang bentrok
				return fiber.NewError(fiber.StatusConflict, "Nomor invoice bentrok, silakan coba lagi")
			}
			return err
		}
		invoice = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Penomoran count+1: kosmetik, diamankan unique index + satu kali retry.
// Attempt dibungkus savepoint supaya transaksi Postgres tidak abort setelah
// insert gagal; tanpa itu retry dan re-fetch pemenang di atas tidak bisa jalan.
func createWithNumberRetry(tx *gorm.DB, inv *model.InvoiceModel) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		number, err := nextInvoiceNumber(tx)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number

		if err := tx.SavePoint("sp_invoice_number").Error; err != nil {
			return err
		}
		err = tx.Create(inv).Error
		if err == nil {
			return nil
		}
		if !helper.IsUniqueViolation(err) {
			return err
		}
		if rbErr := tx.RollbackTo("sp_invoice_number").Error; rbErr != nil {
			return rbErr
		}
		lastErr = err
	}
	return lastErr
}

func nextInvoiceNumber(tx *gorm.DB) (string, error) {
	var count int64
	if err := tx.Model(&model.InvoiceModel{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%03d", time.Now().Year(), count+1), nil
}

func itemsSnapshot(tx *gorm.DB, orderID uuid.UUID) ([]byte, error) {
	var items []orderModel.OrderItemModel
	if err := tx.Where("order_id = ?", orderID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return json.Marshal(items)
}

func GetInvoice(db *gorm.DB, invoiceID uuid.UUID) (*model.InvoiceModel, error) {
	var invoice model.InvoiceModel
	if err := db.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Invoice tidak ditemukan")
		}
		return nil, err
	}
	return &invoice, nil
}
