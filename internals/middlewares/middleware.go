package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware global dengan urutan:
// CORS → recovery → rate limiter global. Limiter login dipasang per-route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
}
