// file: internals/features/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "muaku_backend/internals/features/invoices/controller"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

func InvoiceRoutes(app *fiber.App, db *gorm.DB) {
	invoiceController := controller.NewInvoiceController(db)

	// Generate nempel di order (pembayaran terakhir order tsb)
	app.Post("/api/orders/:id/invoice", authMiddleware.APIGuard(), invoiceController.GenerateForOrder)

	invoices := app.Group("/api/invoices", authMiddleware.APIGuard())
	invoices.Get("/", invoiceController.List)
	invoices.Get("/:id", invoiceController.Get)
	invoices.Post("/:id/payment-link", invoiceController.CreatePaymentLink)
}
