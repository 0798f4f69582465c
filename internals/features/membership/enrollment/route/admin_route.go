// file: internals/features/membership/enrollment/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchstats_backend/internals/constants"
	"churchstats_backend/internals/features/membership/enrollment/controller"
	auth "churchstats_backend/internals/middlewares/auth"
)

// Semua endpoint periode keanggotaan khusus admin (entri data & review)
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentPeriodController(db)

	grp := r.Group("/enrollment-periods",
		auth.OnlyRoles(constants.RoleErrorAdmin("periode keanggotaan"), constants.AdminOnly...),
	)
	grp.Post("/", ctrl.CreateEnrollmentPeriod)
	grp.Put("/:id", ctrl.UpdateEnrollmentPeriod)
	grp.Get("/uncertain", ctrl.ListUncertain)

	r.Get("/members/:member_id/enrollment-periods",
		auth.OnlyRoles(constants.RoleErrorAdmin("periode keanggotaan"), constants.AdminOnly...),
		ctrl.ListByMember,
	)
}
