// file: internals/features/meetings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchstats_backend/internals/constants"
	"churchstats_backend/internals/features/meetings/controller"
	auth "churchstats_backend/internals/middlewares/auth"
)

// Halaman diagnosa duplikat — admin saja
func MeetingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDuplicateMeetingController(db)

	grp := r.Group("/meetings",
		auth.OnlyRoles(constants.RoleErrorAdmin("diagnosa meeting"), constants.AdminOnly...),
	)
	grp.Get("/duplicates", ctrl.ListDuplicates)
	grp.Delete("/", ctrl.DeleteMeetings)
}
