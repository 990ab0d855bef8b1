package repositories

import (
	"context"
	"strings"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// returnRepository implements ReturnRepository interface
type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository creates a new return repository
func NewReturnRepository(db *gorm.DB) ReturnRepository {
	return &returnRepository{db: db}
}

// CreateWithOrderCancellation creates the return and transitions its order
// to Cancelled inside one transaction. When the order id does not resolve
// the transaction rolls back and no return row is left behind.
func (r *returnRepository) CreateWithOrderCancellation(ctx context.Context, ret *models.Return, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			return err
		}
		if err := tx.Create(ret).Error; err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled
		return tx.Model(&order).Update("status", models.OrderStatusCancelled).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID gets a return by ID
func (r *returnRepository) GetByID(ctx context.Context, id uint) (*models.Return, error) {
	var ret models.Return
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ret).Error
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// List lists all returns
func (r *returnRepository) List(ctx context.Context) ([]*models.Return, error) {
	var returns []*models.Return
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&returns).Error
	return returns, err
}

// Search finds returns whose invoice number contains the query,
// case-insensitive
func (r *returnRepository) Search(ctx context.Context, query string) ([]*models.Return, error) {
	var returns []*models.Return
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(invoice_number) LIKE ?", pattern).
		Find(&returns).Error
	return returns, err
}

// UpdateStatus sets the return status and returns the updated record
func (r *returnRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.Return, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Return{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a return by ID and returns the deleted record
func (r *returnRepository) Delete(ctx context.Context, id uint) (*models.Return, error) {
	ret, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Return{}, id).Error; err != nil {
		return nil, err
	}
	return ret, nil
}

// CountByStatus counts returns by status
func (r *returnRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Return{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Count counts all returns
func (r *returnRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Return{}).Count(&count).Error
	return count, err
}
