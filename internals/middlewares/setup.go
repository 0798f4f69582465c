// middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchstats_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global dengan urutan yang aman:
// recovery paling luar, lalu CORS, logger, limiter, dan injeksi DB.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
