package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Warning thresholds. Items with no explicit low-stock threshold fall
// back to 2; expiry warnings cover everything expiring within 30 days,
// already-expired items included.
const (
	fallbackLowStockQty = 2
	expiryWarningDays   = 30
)

// ItemService handles item business logic
type ItemService struct {
	itemRepo     repositories.ItemRepository
	categoryRepo repositories.CategoryRepository
	audit        *AuditService
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repositories.ItemRepository,
	categoryRepo repositories.CategoryRepository,
	audit *AuditService,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		audit:        audit,
	}
}

// CreateItemInput represents item creation input
type CreateItemInput struct {
	Name               string     `json:"name"`
	Qty                int        `json:"qty"`
	SKU                string     `json:"sku"`
	Shelf              string     `json:"shelf"`
	Status             string     `json:"status"`
	Category           string     `json:"category"`
	LowStockWarningQty int        `json:"low_stock_warning_qty"`
	ExpiryDate         *time.Time `json:"expiry_date"`
}

// UpdateItemInput represents a partial item update; nil fields are left
// untouched
type UpdateItemInput struct {
	Name               *string    `json:"name"`
	Qty                *int       `json:"qty"`
	SKU                *string    `json:"sku"`
	Shelf              *string    `json:"shelf"`
	Status             *string    `json:"status"`
	Category           *string    `json:"category"`
	LowStockWarningQty *int       `json:"low_stock_warning_qty"`
	ExpiryDate         *time.Time `json:"expiry_date"`
}

// Create creates a new item
func (s *ItemService) Create(ctx context.Context, input *CreateItemInput, actor string) (*models.Item, error) {
	item := &models.Item{
		Name:               input.Name,
		Qty:                input.Qty,
		SKU:                input.SKU,
		Shelf:              input.Shelf,
		Status:             input.Status,
		Category:           input.Category,
		LowStockWarningQty: input.LowStockWarningQty,
		ExpiryDate:         input.ExpiryDate,
	}
	if item.Shelf == "" {
		item.Shelf = "unknown"
	}
	if item.Status == "" {
		item.Status = models.ItemStatusOnStock
	}
	if item.Category == "" {
		item.Category = "other"
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeItem, models.LogActionCreate,
		fmt.Sprintf("New item: %s created successfully by %s on %s", item.Name, actor, Timestamp()))

	return item, nil
}

// List lists items partitioned by the archived flag
func (s *ItemService) List(ctx context.Context, archived bool, params *pagination.Params) ([]*models.Item, error) {
	return s.itemRepo.List(ctx, archived, params)
}

// Search finds items matching the query over name and sku
func (s *ItemService) Search(ctx context.Context, query string) ([]*models.Item, error) {
	return s.itemRepo.Search(ctx, query)
}

// Update applies a partial update to an item
func (s *ItemService) Update(ctx context.Context, id uint, input *UpdateItemInput, actor string) (*models.Item, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Qty != nil {
		fields["qty"] = *input.Qty
	}
	if input.SKU != nil {
		fields["sku"] = *input.SKU
	}
	if input.Shelf != nil {
		fields["shelf"] = *input.Shelf
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.LowStockWarningQty != nil {
		fields["low_stock_warning_qty"] = *input.LowStockWarningQty
	}
	if input.ExpiryDate != nil {
		fields["expiry_date"] = *input.ExpiryDate
	}

	item, err := s.itemRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeItem, models.LogActionUpdate,
		fmt.Sprintf("Item: %s updated successfully by %s on %s", item.Name, actor, Timestamp()))

	return item, nil
}

// Delete deletes an item
func (s *ItemService) Delete(ctx context.Context, id uint, actor string) (*models.Item, error) {
	item, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeItem, models.LogActionDelete,
		fmt.Sprintf("Item: %s deleted successfully by %s on %s", item.Name, actor, Timestamp()))

	return item, nil
}

// Use decrements an item's stock quantity by the used amount. The
// decrement is a single conditional UPDATE, so concurrent calls can
// never drive the quantity negative or lose an update.
func (s *ItemService) Use(ctx context.Context, id uint, usedAmount int, actor string) (*models.Item, error) {
	if _, err := s.itemRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	ok, err := s.itemRepo.DecrementQty(ctx, id, usedAmount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInsufficientStock
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeItem, models.LogActionUse,
		fmt.Sprintf("Item: %s used at Quantity: %d by %s on %s", item.Name, usedAmount, actor, Timestamp()))

	return item, nil
}

// Archive sets an item's archived flag. Idempotent; intentionally not
// audited, matching the order/item asymmetry of the admin log feed.
func (s *ItemService) Archive(ctx context.Context, id uint, archived bool) (*models.Item, error) {
	item, err := s.itemRepo.SetArchived(ctx, id, archived)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// Warnings computes the warning feed over active items: the low-stock set
// followed by the near-expiry set. An item matching both conditions
// appears twice, once per tag.
func (s *ItemService) Warnings(ctx context.Context) ([]*models.ItemWarning, error) {
	items, err := s.itemRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var warnings []*models.ItemWarning
	for _, item := range items {
		threshold := item.LowStockWarningQty
		if threshold == 0 {
			threshold = fallbackLowStockQty
		}
		if item.Qty <= threshold {
			warnings = append(warnings, &models.ItemWarning{Item: *item, WarningType: models.WarningLowStock})
		}
	}
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		days := int(time.Until(*item.ExpiryDate).Hours() / 24)
		if days <= expiryWarningDays {
			warnings = append(warnings, &models.ItemWarning{Item: *item, WarningType: models.WarningExpiry})
		}
	}
	return warnings, nil
}

// AddCategory creates a new category
func (s *ItemService) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists all categories
func (s *ItemService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}
