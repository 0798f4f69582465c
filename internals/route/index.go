// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "churchstats_backend/internals/middlewares/auth"
	routeDetails "churchstats_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AuthPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	routeDetails.AuthPrivateRoutes(private, db)
	routeDetails.AccessUserRoutes(private, db)
	routeDetails.MembershipUserRoutes(private, db)
	routeDetails.AttendanceUserRoutes(private, db)

	// Input kehadiran: tetap di grup private, gating role lokal ada di route-nya.
	routeDetails.AttendanceReporterRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	routeDetails.MembershipAdminRoutes(admin, db)
	routeDetails.MeetingsAdminRoutes(admin, db)
}
