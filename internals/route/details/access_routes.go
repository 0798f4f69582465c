// file: internals/route/details/access_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessRoute "churchstats_backend/internals/features/access/route"
)

// AccessUserRoutes: scope efektif user saat ini.
func AccessUserRoutes(r fiber.Router, db *gorm.DB) {
	accessRoute.AccessUserRoutes(r, db)
}
