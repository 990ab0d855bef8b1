package services

import (
	"context"
	"testing"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
)

func TestDashboardSummary(t *testing.T) {
	db := setupTestDB(t, t.Name())
	ctx := context.Background()

	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	returnRepo := repositories.NewReturnRepository(db)
	svc := NewDashboardService(itemRepo, orderRepo, returnRepo)

	orders := []string{
		models.OrderStatusOpen,
		models.OrderStatusOpen,
		models.OrderStatusConfirmed,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	}
	for i, status := range orders {
		o := &models.Order{InvoiceNumber: string(rune('A' + i)), Status: status}
		if err := orderRepo.Create(ctx, o); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	for _, status := range []string{models.ReturnStatusPending, models.ReturnStatusApproved, models.ReturnStatusCompleted} {
		if err := db.Create(&models.Return{InvoiceNumber: "R-" + status, Status: status}).Error; err != nil {
			t.Fatalf("seed return: %v", err)
		}
	}

	items := []struct {
		name   string
		status string
	}{
		{"a", models.ItemStatusOnStock},
		{"b", models.ItemStatusOnStock},
		{"c", models.ItemStatusOutOfStock},
		{"d", models.ItemStatusLowOnStock},
	}
	for _, it := range items {
		if err := itemRepo.Create(ctx, &models.Item{Name: it.name, Qty: 1, Status: it.status}); err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}

	summary, err := svc.GetSummary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.Orders.Total != 5 || summary.Orders.Open != 2 || summary.Orders.Confirmed != 1 ||
		summary.Orders.Completed != 1 || summary.Orders.Cancelled != 1 {
		t.Errorf("orders = %+v", summary.Orders)
	}
	if summary.Returns.Total != 3 || summary.Returns.Pending != 1 || summary.Returns.Approved != 1 ||
		summary.Returns.Completed != 1 {
		t.Errorf("returns = %+v", summary.Returns)
	}
	if summary.Items.Total != 4 || summary.Items.OnStock != 2 || summary.Items.OutOfStock != 1 ||
		summary.Items.LowOnStock != 1 {
		t.Errorf("items = %+v", summary.Items)
	}
}

func TestDashboardSummaryEmpty(t *testing.T) {
	db := setupTestDB(t, t.Name())

	svc := NewDashboardService(
		repositories.NewItemRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewReturnRepository(db),
	)

	summary, err := svc.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Orders.Total != 0 || summary.Returns.Total != 0 || summary.Items.Total != 0 {
		t.Errorf("expected zeroed summary, got %+v", summary)
	}
}
