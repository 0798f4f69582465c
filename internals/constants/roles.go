package constants

import "fmt"

/* ==========================
   ✅ Role Global (seluruh sistem)
========================== */
const (
	RoleAdmin          = "admin"
	RoleNationalViewer = "national_viewer"
	RoleRegionalViewer = "regional_viewer"
)

/* ==========================
   ✅ Role Lokal (per lokalitas)
========================== */
const (
	LocalRoleAdmin    = "admin"
	LocalRoleCoAdmin  = "co_admin"
	LocalRoleReporter = "reporter"
	LocalRoleViewer   = "viewer"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyReportersCanAccess = "❌ Hanya reporter, co-admin, atau admin yang boleh mengakses fitur %s."
	ErrOnlyViewersCanAccess   = "❌ Anda tidak punya akses lihat untuk fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorReporter(feature string) string {
	return fmt.Sprintf(ErrOnlyReportersCanAccess, feature)
}

func RoleErrorViewer(feature string) string {
	return fmt.Sprintf(ErrOnlyViewersCanAccess, feature)
}

/* ==========================
   ✅ Grouped Role Slices
========================== */
var (
	GlobalViewerRoles = []string{
		RoleAdmin,
		RoleNationalViewer,
		RoleRegionalViewer,
	}

	ReporterAndAbove = []string{
		LocalRoleReporter,
		LocalRoleCoAdmin,
		LocalRoleAdmin,
	}

	CoAdminAndAbove = []string{
		LocalRoleCoAdmin,
		LocalRoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
