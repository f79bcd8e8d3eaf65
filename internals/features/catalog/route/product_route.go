// file: internals/features/catalog/route/product_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "muaku_backend/internals/features/catalog/controller"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

func ProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controller.NewProductController(db)

	products := app.Group("/api/products", authMiddleware.APIGuard())
	products.Post("/", productController.Create)
	products.Get("/", productController.List)
	products.Get("/:id", productController.Get)
	products.Put("/:id", productController.Update)
	products.Delete("/:id", productController.Delete)
}
