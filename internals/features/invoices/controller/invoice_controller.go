package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientModel "muaku_backend/internals/features/clients/model"
	"muaku_backend/internals/features/invoices/model"
	"muaku_backend/internals/features/invoices/service"
	orderService "muaku_backend/internals/features/orders/service"
	helper "muaku_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

// POST /api/orders/:id/invoice — invoice untuk pembayaran terakhir
func (ic *InvoiceController) GenerateForOrder(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var input struct {
		DueInDays int `json:"due_in_days"`
	}
	// body kosong sah: pakai default jatuh tempo
	_ = c.BodyParser(&input)

	invoice, err := service.GenerateForLatestPayment(ic.DB, orderID, input.DueInDays)
	if err != nil {
		log.Printf("[ERROR] generate invoice: %v", err)
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Invoice siap", invoice)
}

// GET /api/invoices
func (ic *InvoiceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ic.DB.Model(&model.InvoiceModel{})
	if orderID := c.Query("order_id"); orderID != "" {
		q = q.Where("order_id = ?", orderID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count invoices: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data invoice")
	}

	var invoices []model.InvoiceModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&invoices).Error; err != nil {
		log.Printf("[ERROR] list invoices: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data invoice")
	}

	return helper.JsonList(c, "", invoices, helper.BuildPagination(total, paging))
}

// GET /api/invoices/:id
func (ic *InvoiceController) Get(c *fiber.Ctx) error {
	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invoice tidak valid")
	}

	invoice, err := service.GetInvoice(ic.DB, invoiceID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", invoice)
}

// POST /api/invoices/:id/payment-link — Snap link untuk sisa tagihan
func (ic *InvoiceController) CreatePaymentLink(c *fiber.Ctx) error {
	if !service.MidtransReady() {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Payment gateway tidak dikonfigurasi")
	}

	invoiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invoice tidak valid")
	}

	invoice, err := service.GetInvoice(ic.DB, invoiceID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	order, err := orderService.GetOrder(ic.DB, invoice.OrderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if order.RemainingAmount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order sudah lunas")
	}

	var client clientModel.ClientModel
	if err := ic.DB.First(&client, "id = ?", order.ClientID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Klien tidak ditemukan")
	}

	email := ""
	if client.Email != nil {
		email = *client.Email
	}
	snapOrderID := fmt.Sprintf("%s-%d", invoice.InvoiceNumber, time.Now().Unix())

	token, err := service.GenerateSnapToken(snapOrderID, order.RemainingAmount, client.Name, email)
	if err != nil {
		log.Printf("[ERROR] midtrans snap: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat payment link")
	}

	return helper.JsonOK(c, "Payment link siap", fiber.Map{
		"snap_token":    token,
		"snap_order_id": snapOrderID,
		"gross_amount":  order.RemainingAmount,
	})
}
