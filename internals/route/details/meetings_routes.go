// file: internals/route/details/meetings_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meetingRoute "churchstats_backend/internals/features/meetings/route"
)

// MeetingsAdminRoutes: diagnosa duplikat & hapus massal (admin only).
func MeetingsAdminRoutes(r fiber.Router, db *gorm.DB) {
	meetingRoute.MeetingAdminRoutes(r, db)
}
