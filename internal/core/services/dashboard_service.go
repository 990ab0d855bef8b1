package services

import (
	"context"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
)

// DashboardService computes the admin dashboard summary
type DashboardService struct {
	itemRepo   repositories.ItemRepository
	orderRepo  repositories.OrderRepository
	returnRepo repositories.ReturnRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	itemRepo repositories.ItemRepository,
	orderRepo repositories.OrderRepository,
	returnRepo repositories.ReturnRepository,
) *DashboardService {
	return &DashboardService{
		itemRepo:   itemRepo,
		orderRepo:  orderRepo,
		returnRepo: returnRepo,
	}
}

// OrderStats represents order counts per status bucket
type OrderStats struct {
	Total     int64 `json:"total"`
	Open      int64 `json:"open"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// ReturnStats represents return counts per status bucket
type ReturnStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Completed int64 `json:"completed"`
}

// ItemStats represents item counts per stock status bucket
type ItemStats struct {
	Total      int64 `json:"total"`
	OnStock    int64 `json:"onStock"`
	OutOfStock int64 `json:"outOfStock"`
	LowOnStock int64 `json:"lowOnStock"`
}

// Summary represents the dashboard payload
type Summary struct {
	Orders  OrderStats  `json:"orders"`
	Returns ReturnStats `json:"returns"`
	Items   ItemStats   `json:"items"`
}

// GetSummary computes the per-status counts. The last bucket of each
// group is derived as total minus the queried buckets, which holds as
// long as no record carries a status outside the known enum.
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	var err error
	if summary.Orders.Total, err = s.orderRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Orders.Open, err = s.orderRepo.CountByStatus(ctx, models.OrderStatusOpen); err != nil {
		return nil, err
	}
	if summary.Orders.Confirmed, err = s.orderRepo.CountByStatus(ctx, models.OrderStatusConfirmed); err != nil {
		return nil, err
	}
	if summary.Orders.Completed, err = s.orderRepo.CountByStatus(ctx, models.OrderStatusCompleted); err != nil {
		return nil, err
	}
	summary.Orders.Cancelled = summary.Orders.Total - summary.Orders.Open -
		summary.Orders.Confirmed - summary.Orders.Completed

	if summary.Returns.Total, err = s.returnRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Returns.Pending, err = s.returnRepo.CountByStatus(ctx, models.ReturnStatusPending); err != nil {
		return nil, err
	}
	if summary.Returns.Approved, err = s.returnRepo.CountByStatus(ctx, models.ReturnStatusApproved); err != nil {
		return nil, err
	}
	summary.Returns.Completed = summary.Returns.Total - summary.Returns.Pending - summary.Returns.Approved

	if summary.Items.Total, err = s.itemRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Items.OnStock, err = s.itemRepo.CountByStatus(ctx, models.ItemStatusOnStock); err != nil {
		return nil, err
	}
	if summary.Items.OutOfStock, err = s.itemRepo.CountByStatus(ctx, models.ItemStatusOutOfStock); err != nil {
		return nil, err
	}
	summary.Items.LowOnStock = summary.Items.Total - summary.Items.OnStock - summary.Items.OutOfStock

	return summary, nil
}
