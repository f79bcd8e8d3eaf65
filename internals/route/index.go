// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appointmentRoute "muaku_backend/internals/features/appointments/route"
	productRoute "muaku_backend/internals/features/catalog/route"
	clientRoute "muaku_backend/internals/features/clients/route"
	invoiceRoute "muaku_backend/internals/features/invoices/route"
	orderRoute "muaku_backend/internals/features/orders/route"
	authRoute "muaku_backend/internals/features/users/auth/route"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi: halaman (cookie + redirect)
// dan API (JSON + 401).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	registerPageRoutes(app)

	authRoute.AuthRoutes(app, db)
	clientRoute.ClientRoutes(app, db)
	productRoute.ProductRoutes(app, db)
	orderRoute.OrderRoutes(app, db)
	invoiceRoute.InvoiceRoutes(app, db)
	appointmentRoute.AppointmentRoutes(app, db)
}

// Halaman dilindungi PageGuard; frontend aslinya SPA, jadi handler di sini
// hanya mengembalikan shell sederhana.
func registerPageRoutes(app *fiber.App) {
	guard := authMiddleware.PageGuard()

	app.Get("/", guard, func(c *fiber.Ctx) error {
		// PageGuard selalu me-redirect "/" sebelum sampai ke sini
		return c.Redirect(authMiddleware.LoginPath, fiber.StatusFound)
	})

	app.Get(authMiddleware.LoginPath, guard, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(loginPageHTML)
	})

	app.Get(authMiddleware.DashboardPath, guard, func(c *fiber.Ctx) error {
		su, _ := authMiddleware.SessionFromLocals(c)
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(dashboardPageHTML(su.FullName))
	})
}
