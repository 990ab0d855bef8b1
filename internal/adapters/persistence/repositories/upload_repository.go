package repositories

import (
	"context"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// uploadRepository implements UploadRepository interface
type uploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new upload repository
func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

// Create records an uploaded file
func (r *uploadRepository) Create(ctx context.Context, upload *models.Upload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

// List lists all uploads newest first
func (r *uploadRepository) List(ctx context.Context) ([]*models.Upload, error) {
	var uploads []*models.Upload
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}
