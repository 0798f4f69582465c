// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventsRoute "churchstats_backend/internals/features/attendance/events/route"
	matrixRoute "churchstats_backend/internals/features/attendance/matrix/route"
)

// AttendanceReporterRoutes: input kehadiran (pelapor lokalitas & di atasnya).
func AttendanceReporterRoutes(r fiber.Router, db *gorm.DB) {
	eventsRoute.AttendanceReporterRoutes(r, db)
}

// AttendanceUserRoutes: matrix tahunan & overview per member.
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	matrixRoute.MatrixUserRoutes(r, db)
}
