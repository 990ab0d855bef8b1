package repositories

import (
	"context"
	"strings"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"

	"gorm.io/gorm"
)

// itemSortable whitelists the columns the item listings may sort by
var itemSortable = map[string]bool{
	"name":       true,
	"qty":        true,
	"sku":        true,
	"shelf":      true,
	"status":     true,
	"category":   true,
	"expiry_date": true,
	"created_at": true,
	"updated_at": true,
}

// itemRepository implements ItemRepository interface
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create creates a new item
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID gets an item by ID
func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List lists items partitioned by the archived flag, sorted and paginated
func (r *itemRepository) List(ctx context.Context, archived bool, params *pagination.Params) ([]*models.Item, error) {
	var items []*models.Item
	err := r.db.WithContext(ctx).
		Where("archived = ?", archived).
		Order(params.OrderClause(itemSortable)).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&items).Error
	return items, err
}

// ListActive lists every non-archived item, used by the warning computation
func (r *itemRepository) ListActive(ctx context.Context) ([]*models.Item, error) {
	var items []*models.Item
	err := r.db.WithContext(ctx).Where("archived = ?", false).Find(&items).Error
	return items, err
}

// Search finds items whose name or sku contains the query, case-insensitive
func (r *itemRepository) Search(ctx context.Context, query string) ([]*models.Item, error) {
	var items []*models.Item
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern).
		Find(&items).Error
	return items, err
}

// Update applies a partial field update and returns the updated record.
// Existence is checked first: MySQL reports zero affected rows for no-op
// updates, so RowsAffected cannot distinguish missing from unchanged.
func (r *itemRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Item, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete deletes an item by ID and returns the deleted record
func (r *itemRepository) Delete(ctx context.Context, id uint) (*models.Item, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Item{}, id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DecrementQty conditionally decrements the stock quantity in a single
// guarded UPDATE. Returns false when the item doesn't hold enough stock,
// leaving the quantity unchanged. Quantity can never go negative, even
// under concurrent calls.
func (r *itemRepository) DecrementQty(ctx context.Context, id uint, amount int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("id = ? AND qty >= ?", id, amount).
		UpdateColumn("qty", gorm.Expr("qty - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SetArchived sets the archived flag and returns the updated record.
// Idempotent: re-archiving or re-unarchiving is not an error.
func (r *itemRepository) SetArchived(ctx context.Context, id uint, archived bool) (*models.Item, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Update("archived", archived).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// CountByStatus counts items by stock status
func (r *itemRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Count counts all items
func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&count).Error
	return count, err
}

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// List lists all categories
func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

// ExistsByName checks if a category name exists
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
