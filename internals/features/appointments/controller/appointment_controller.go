package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"muaku_backend/internals/features/appointments/dto"
	"muaku_backend/internals/features/appointments/model"
	helper "muaku_backend/internals/helpers"
)

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

// POST /api/appointments
func (ac *AppointmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")
	}

	appointment := model.AppointmentModel{
		ClientID: req.ClientID,
		Title:    req.Title,
		Location: req.Location,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Status:   model.AppointmentStatusScheduled,
		Notes:    req.Notes,
	}
	if err := ac.DB.Create(&appointment).Error; err != nil {
		log.Printf("[ERROR] create appointment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", appointment)
}

// GET /api/appointments?year=&month=
func (ac *AppointmentController) List(c *fiber.Ctx) error {
	q := ac.DB.Model(&model.AppointmentModel{})

	// Filter per bulan untuk tampilan kalender
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year > 0 && month >= 1 && month <= 12 {
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("starts_at >= ? AND starts_at < ?", from, from.AddDate(0, 1, 0))
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var appointments []model.AppointmentModel
	if err := q.Order("starts_at ASC").Find(&appointments).Error; err != nil {
		log.Printf("[ERROR] list appointments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "", appointments)
}

// PUT /api/appointments/:id
func (ac *AppointmentController) Update(c *fiber.Ctx) error {
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var appointment model.AppointmentModel
	if err := ac.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	if req.Title != nil {
		appointment.Title = *req.Title
	}
	if req.Location != nil {
		appointment.Location = req.Location
	}
	if req.StartsAt != nil {
		appointment.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		appointment.EndsAt = *req.EndsAt
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	if !appointment.EndsAt.After(appointment.StartsAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")
	}

	if err := ac.DB.Save(&appointment).Error; err != nil {
		log.Printf("[ERROR] update appointment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}
	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", appointment)
}

// DELETE /api/appointments/:id — cancel, bukan hard delete
func (ac *AppointmentController) Cancel(c *fiber.Ctx) error {
	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	res := ac.DB.Model(&model.AppointmentModel{}).
		Where("id = ?", appointmentID).
		Update("status", model.AppointmentStatusCanceled)
	if res.Error != nil {
		log.Printf("[ERROR] cancel appointment: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonOK(c, "Jadwal dibatalkan", nil)
}
