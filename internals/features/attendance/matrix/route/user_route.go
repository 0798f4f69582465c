// file: internals/features/attendance/matrix/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchstats_backend/internals/features/attendance/matrix/controller"
)

// Halaman rekap dibaca semua user login; pembatasnya scope efektif,
// bukan role — resolver yang menentukan lokalitas/distrik mana yang tampil
func MatrixUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMatrixController(db)

	r.Get("/reports/matrix", ctrl.GetMatrix)
	r.Get("/reports/members/:member_id/overview", ctrl.GetMemberOverview)
}
