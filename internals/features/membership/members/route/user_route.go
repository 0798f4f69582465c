// file: internals/features/membership/members/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "churchstats_backend/internals/features/membership/members/controller"
)

// MemberUserRoutes: daftar & detail member, di bawah auth (semua role login).
func MemberUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	r.Get("/members", ctrl.ListMembers)
	r.Get("/members/:id", ctrl.GetMember)
}
