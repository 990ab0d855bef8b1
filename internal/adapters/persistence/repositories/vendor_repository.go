package repositories

import (
	"context"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// vendorRepository implements VendorRepository interface
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// Create creates a new vendor
func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

// List lists all vendors
func (r *vendorRepository) List(ctx context.Context) ([]*models.Vendor, error) {
	var vendors []*models.Vendor
	err := r.db.WithContext(ctx).Order("display_name ASC").Find(&vendors).Error
	return vendors, err
}

// Update applies a partial field update and returns the updated record
func (r *vendorRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Vendor{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// Delete deletes a vendor by ID and returns the deleted record. Orders
// referencing the vendor by name keep their dangling reference.
func (r *vendorRepository) Delete(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Vendor{}, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}
