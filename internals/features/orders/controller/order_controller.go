package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"muaku_backend/internals/features/orders/dto"
	"muaku_backend/internals/features/orders/model"
	"muaku_backend/internals/features/orders/service"
	helper "muaku_backend/internals/helpers"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// POST /api/orders
func (oc *OrderController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := service.CreateOrder(oc.DB, req)
	if err != nil {
		log.Printf("[ERROR] create order: %v", err)
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Order berhasil dibuat", order)
}

// GET /api/orders
func (oc *OrderController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := oc.DB.Model(&model.OrderModel{})
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if status := c.Query("payment_status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count orders: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data order")
	}

	var orders []model.OrderModel
	if err := q.Preload("Items").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&orders).Error; err != nil {
		log.Printf("[ERROR] list orders: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data order")
	}

	return helper.JsonList(c, "", orders, helper.BuildPagination(total, paging))
}

// GET /api/orders/:id
func (oc *OrderController) Get(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	order, err := service.GetOrder(oc.DB, orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", order)
}

// PUT /api/orders/:id/items
func (oc *OrderController) UpdateItems(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var req dto.UpdateOrderItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := service.UpdateOrderItems(oc.DB, orderID, req)
	if err != nil {
		log.Printf("[ERROR] update order items: %v", err)
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Order berhasil diperbarui", order)
}

// DELETE /api/orders/:id
func (oc *OrderController) Delete(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	if err := service.DeleteOrder(oc.DB, orderID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Order berhasil dihapus", nil)
}

// POST /api/orders/:id/payments
func (oc *OrderController) AddPayment(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	var req dto.AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	payment, order, err := service.AddPayment(oc.DB, orderID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", fiber.Map{
		"payment": payment,
		"order":   order,
	})
}

// GET /api/orders/:id/payments
func (oc *OrderController) ListPayments(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID order tidak valid")
	}

	payments, err := service.ListPayments(oc.DB, orderID)
	if err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}
	return helper.JsonOK(c, "", payments)
}
