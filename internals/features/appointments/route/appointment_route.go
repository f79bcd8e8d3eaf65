// file: internals/features/appointments/route/appointment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "muaku_backend/internals/features/appointments/controller"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

func AppointmentRoutes(app *fiber.App, db *gorm.DB) {
	appointmentController := controller.NewAppointmentController(db)

	appointments := app.Group("/api/appointments", authMiddleware.APIGuard())
	appointments.Post("/", appointmentController.Create)
	appointments.Get("/", appointmentController.List)
	appointments.Put("/:id", appointmentController.Update)
	appointments.Delete("/:id", appointmentController.Cancel)
}
