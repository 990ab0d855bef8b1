package repositories

import (
	"context"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/pagination"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
}

// ItemRepository defines item repository interface
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	List(ctx context.Context, archived bool, params *pagination.Params) ([]*models.Item, error)
	ListActive(ctx context.Context) ([]*models.Item, error)
	Search(ctx context.Context, query string) ([]*models.Item, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Item, error)
	Delete(ctx context.Context, id uint) (*models.Item, error)
	DecrementQty(ctx context.Context, id uint, amount int) (bool, error)
	SetArchived(ctx context.Context, id uint, archived bool) (*models.Item, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines category repository interface
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// OrderRepository defines order repository interface
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context, archived bool, params *pagination.Params) ([]*models.Order, error)
	Search(ctx context.Context, query string) ([]*models.Order, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uint) (*models.Order, error)
	SetArchived(ctx context.Context, id uint, archived bool) (*models.Order, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// ReturnRepository defines return repository interface
type ReturnRepository interface {
	CreateWithOrderCancellation(ctx context.Context, ret *models.Return, orderID uint) (*models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Return, error)
	List(ctx context.Context) ([]*models.Return, error)
	Search(ctx context.Context, query string) ([]*models.Return, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Return, error)
	Delete(ctx context.Context, id uint) (*models.Return, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// VendorRepository defines vendor repository interface
type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	List(ctx context.Context) ([]*models.Vendor, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Vendor, error)
	Delete(ctx context.Context, id uint) (*models.Vendor, error)
}

// LogRepository defines audit log repository interface
type LogRepository interface {
	Create(ctx context.Context, entry *models.Log) error
	List(ctx context.Context, logType, status string, params *pagination.Params) ([]*models.Log, error)
	MarkAsRead(ctx context.Context, id uint) (*models.Log, error)
	Delete(ctx context.Context, id uint) (*models.Log, error)
	DeleteRead(ctx context.Context) error
	CountByType(ctx context.Context, logType string) (int64, error)
}

// UploadRepository defines upload repository interface (resources service)
type UploadRepository interface {
	Create(ctx context.Context, upload *models.Upload) error
	List(ctx context.Context) ([]*models.Upload, error)
}
