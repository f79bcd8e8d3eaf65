// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "muaku_backend/internals/features/users/auth/controller"
	rateLimiter "muaku_backend/internals/middlewares"
	authMiddleware "muaku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)
	baseAuth.Get("/me", authMiddleware.APIGuard(), authController.Me)

	// Daftar user hanya untuk owner
	app.Get("/api/users",
		authMiddleware.APIGuard(),
		authMiddleware.RequireRole("owner"),
		authController.ListUsers,
	)
}
