// file: internals/features/access/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchstats_backend/internals/features/access/controller"
)

// Scope efektif dibaca semua user yang sudah login
func AccessUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScopeController(db)
	r.Get("/me/scope", ctrl.GetEffectiveScope)
}
