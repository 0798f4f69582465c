package access

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"churchstats_backend/internals/features/access/model"
)

type LocalitySeed struct {
	LocalityName string   `json:"locality_name"`
	Districts    []string `json:"districts"`
}

// SeedLocalitiesFromJSON isi localities + districts awal. Idempotent by name.
func SeedLocalitiesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file lokalitas:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []LocalitySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var locality model.LocalityModel
		err := db.Where("locality_name = ?", data.LocalityName).First(&locality).Error
		if err == gorm.ErrRecordNotFound {
			locality = model.LocalityModel{LocalityName: data.LocalityName}
			if err := db.Create(&locality).Error; err != nil {
				log.Printf("❌ Gagal insert lokalitas '%s': %v", data.LocalityName, err)
				continue
			}
			log.Printf("✅ Berhasil insert lokalitas '%s'", data.LocalityName)
		} else if err != nil {
			log.Printf("❌ Gagal cek lokalitas '%s': %v", data.LocalityName, err)
			continue
		}

		for _, districtName := range data.Districts {
			var existing model.DistrictModel
			if err := db.Where("district_locality_id = ? AND district_name = ?",
				locality.LocalityId, districtName).First(&existing).Error; err == nil {
				continue
			}
			district := model.DistrictModel{
				DistrictLocalityId: locality.LocalityId,
				DistrictName:       districtName,
			}
			if err := db.Create(&district).Error; err != nil {
				log.Printf("❌ Gagal insert distrik '%s': %v", districtName, err)
			}
		}
	}
}
