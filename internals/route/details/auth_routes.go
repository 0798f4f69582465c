// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "churchstats_backend/internals/features/users/auth/route"
	"churchstats_backend/internals/middlewares"
)

// AuthPublicRoutes: login & refresh (tanpa token), login dibatasi limiter ketat.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	limited := r.Group("", middlewares.LoginRateLimiter())
	authRoute.AuthPublicRoutes(limited, db)
}

// AuthPrivateRoutes: me / logout / change-password (di belakang AuthMiddleware).
func AuthPrivateRoutes(r fiber.Router, db *gorm.DB) {
	authRoute.AuthPrivateRoutes(r, db)
}
