package repositories

import (
	"context"
	"strings"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"

	"gorm.io/gorm"
)

// orderSortable whitelists the columns the order listings may sort by
var orderSortable = map[string]bool{
	"invoice_number": true,
	"order_date":     true,
	"delivery_date":  true,
	"vendor":         true,
	"status":         true,
	"created_at":     true,
	"updated_at":     true,
}

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID gets an order by ID
func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List lists orders partitioned by the archived flag, sorted and paginated
func (r *orderRepository) List(ctx context.Context, archived bool, params *pagination.Params) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.WithContext(ctx).
		Where("archived = ?", archived).
		Order(params.OrderClause(orderSortable)).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&orders).Error
	return orders, err
}

// Search finds orders whose invoice number or vendor contains the query,
// case-insensitive
func (r *orderRepository) Search(ctx context.Context, query string) ([]*models.Order, error) {
	var orders []*models.Order
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(invoice_number) LIKE ? OR LOWER(vendor) LIKE ?", pattern, pattern).
		Find(&orders).Error
	return orders, err
}

// Update applies a partial field update and returns the updated record
func (r *orderRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Order, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Save persists a loaded order record. Used for edits touching the
// serialized attachments column, which map updates cannot carry.
func (r *orderRepository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Delete deletes an order by ID and returns the deleted record
func (r *orderRepository) Delete(ctx context.Context, id uint) (*models.Order, error) {
	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Order{}, id).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// SetArchived sets the archived flag and returns the updated record
func (r *orderRepository) SetArchived(ctx context.Context, id uint, archived bool) (*models.Order, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("archived", archived).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// CountByStatus counts orders by status
func (r *orderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Count counts all orders
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}
