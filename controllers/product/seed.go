package productcontroller

import (
	"log"

	"gorm.io/gorm"

	"github.com/mylaramshashank/academicshelf/models"
)

// SeedDefaultProducts inserts the two stock academic materials when the
// catalog is empty. Idempotent; an already-seeded catalog is left alone.
func SeedDefaultProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Product{
		{
			ID:          "1",
			Name:        "Records",
			Type:        models.ProductTypeRecords,
			Price:       120,
			Stock:       50,
			Description: "Academic Material",
		},
		{
			ID:          "2",
			Name:        "Booklets",
			Type:        models.ProductTypeBooklets,
			Price:       30,
			Stock:       100,
			Description: "Academic Material",
		},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d default products", len(defaults))
	return nil
}
