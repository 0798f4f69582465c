// file: internals/route/details/membership_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentRoute "churchstats_backend/internals/features/membership/enrollment/route"
	memberRoute "churchstats_backend/internals/features/membership/members/route"
)

// MembershipUserRoutes: daftar & detail member untuk semua user login.
func MembershipUserRoutes(r fiber.Router, db *gorm.DB) {
	memberRoute.MemberUserRoutes(r, db)
}

// MembershipAdminRoutes: CRUD periode keanggotaan (admin only).
func MembershipAdminRoutes(r fiber.Router, db *gorm.DB) {
	enrollmentRoute.EnrollmentAdminRoutes(r, db)
}
