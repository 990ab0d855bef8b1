package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultCategories(); err != nil {
		log.Printf("⚠️ Category seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultCategories seeds the fallback item category.
// Items created without a category land in "other".
func (s *Seeder) seedDefaultCategories() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", "other").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.db.Create(&models.Category{Name: "other"}).Error; err != nil {
		return err
	}

	log.Println("✅ Default category created: other")
	return nil
}
