// file: internals/features/clients/route/client_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "muaku_backend/internals/features/clients/controller"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

func ClientRoutes(app *fiber.App, db *gorm.DB) {
	clientController := controller.NewClientController(db)

	clients := app.Group("/api/clients", authMiddleware.APIGuard())
	clients.Post("/", clientController.Create)
	clients.Get("/", clientController.List)
	clients.Get("/:id", clientController.Get)
	clients.Put("/:id", clientController.Update)
	clients.Delete("/:id", clientController.Delete)
}
