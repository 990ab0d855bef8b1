package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newAuditService(db *gorm.DB) *AuditService {
	return NewAuditService(repositories.NewLogRepository(db))
}

func newItemService(db *gorm.DB) *ItemService {
	return NewItemService(
		repositories.NewItemRepository(db),
		repositories.NewCategoryRepository(db),
		newAuditService(db),
	)
}

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret"
	return NewAuthService(repositories.NewUserRepository(db), newAuditService(db), cfg)
}

func countLogs(t *testing.T, db *gorm.DB, logType string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Log{}).Where("type = ?", logType).Count(&count).Error; err != nil {
		t.Fatalf("count logs: %v", err)
	}
	return count
}

func daysFromNow(days int) *time.Time {
	d := time.Now().AddDate(0, 0, days)
	return &d
}
