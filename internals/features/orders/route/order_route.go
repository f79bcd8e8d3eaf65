// file: internals/features/orders/route/order_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "muaku_backend/internals/features/orders/controller"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

func OrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controller.NewOrderController(db)

	orders := app.Group("/api/orders", authMiddleware.APIGuard())

	orders.Post("/", orderController.Create)
	orders.Get("/", orderController.List)
	orders.Get("/:id", orderController.Get)
	orders.Put("/:id/items", orderController.UpdateItems)
	orders.Delete("/:id", orderController.Delete)

	// Ledger pembayaran
	orders.Post("/:id/payments", orderController.AddPayment)
	orders.Get("/:id/payments", orderController.ListPayments)
}
