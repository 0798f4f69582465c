// file: internals/features/attendance/events/route/reporter_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchstats_backend/internals/constants"
	"churchstats_backend/internals/features/attendance/events/controller"
	auth "churchstats_backend/internals/middlewares/auth"
)

// Entri laporan hanya utk reporter lokal ke atas
func AttendanceReporterRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceEventController(db)

	grp := r.Group("/report",
		auth.OnlyLocalRoles(constants.RoleErrorReporter("entri laporan"), constants.ReporterAndAbove...),
	)
	grp.Post("/primary-attendances", ctrl.CreatePrimaryAttendance)
	grp.Post("/group-attendances", ctrl.CreateGroupAttendance)
	grp.Post("/prayer-attendances", ctrl.CreatePrayerAttendance)
	grp.Post("/dispatch-records", ctrl.CreateDispatchRecord)

	grp.Get("/members/:member_id/events", ctrl.ListMemberEvents)
}
