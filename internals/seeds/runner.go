package seeds

import (
	"gorm.io/gorm"

	access "churchstats_backend/internals/seeds/access"
	users "churchstats_backend/internals/seeds/users/auth"
)

func RunAllSeeds(db *gorm.DB) {
	//* User awal (admin pusat & contoh pelapor)
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")

	//* Lokalitas & distrik awal
	access.SeedLocalitiesFromJSON(db, "internals/seeds/access/data_localities.json")
}
