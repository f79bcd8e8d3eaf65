package seeds

import (
	"gorm.io/gorm"

	userSeed "muaku_backend/internals/seeds/users"
)

// RunAllSeeds dijalankan sekali saat deploy awal (RUN_SEEDS=true).
// Semua seed idempotent: data yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	userSeed.SeedOwnerUser(db)
}
