// internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "churchstats_backend/internals/features/users/auth/controller"
)

// AuthPublicRoutes: endpoint tanpa token (login & refresh via cookie).
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Post("/auth/login", ctrl.Login)
	r.Post("/auth/refresh-token", ctrl.RefreshToken)
}

// AuthPrivateRoutes: endpoint yang butuh access token valid.
func AuthPrivateRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	r.Get("/auth/me", ctrl.Me)
	r.Post("/auth/logout", ctrl.Logout)
	r.Post("/auth/change-password", ctrl.ChangePassword)
}
