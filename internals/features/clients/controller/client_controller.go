package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"muaku_backend/internals/features/clients/dto"
	"muaku_backend/internals/features/clients/model"
	helper "muaku_backend/internals/helpers"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// POST /api/clients
func (cc *ClientController) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	client := model.ClientModel{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		WeddingDate: req.WeddingDate,
		Notes:       req.Notes,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		log.Printf("[ERROR] create client: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data klien")
	}
	return helper.JsonCreated(c, "Klien berhasil ditambahkan", client)
}

// GET /api/clients
func (cc *ClientController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := cc.DB.Model(&model.ClientModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count clients: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data klien")
	}

	var clients []model.ClientModel
	if err := cc.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&clients).Error; err != nil {
		log.Printf("[ERROR] list clients: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data klien")
	}

	return helper.JsonList(c, "", clients, helper.BuildPagination(total, paging))
}

// GET /api/clients/:id
func (cc *ClientController) Get(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID klien tidak valid")
	}

	var client model.ClientModel
	if err := cc.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Klien tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data klien")
	}
	return helper.JsonOK(c, "", client)
}

// PUT /api/clients/:id
func (cc *ClientController) Update(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID klien tidak valid")
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var client model.ClientModel
	if err := cc.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Klien tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data klien")
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.WeddingDate != nil {
		client.WeddingDate = req.WeddingDate
	}
	if req.Notes != nil {
		client.Notes = req.Notes
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		log.Printf("[ERROR] update client: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data klien")
	}
	return helper.JsonUpdated(c, "Klien berhasil diperbarui", client)
}

// DELETE /api/clients/:id
func (cc *ClientController) Delete(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID klien tidak valid")
	}

	res := cc.DB.Delete(&model.ClientModel{}, "id = ?", clientID)
	if res.Error != nil {
		log.Printf("[ERROR] delete client: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data klien")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Klien tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Klien berhasil dihapus", nil)
}
