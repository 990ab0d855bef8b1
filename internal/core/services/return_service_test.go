package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
)

func TestReturnCreateCancelsOrder(t *testing.T) {
	db := setupTestDB(t, t.Name())
	orderRepo := repositories.NewOrderRepository(db)
	svc := NewReturnService(repositories.NewReturnRepository(db), newAuditService(db))
	ctx := context.Background()

	order := &models.Order{InvoiceNumber: "INV-100", Vendor: "MedSupply", Status: models.OrderStatusOpen}
	if err := orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	input := &CreateReturnInput{OrderID: order.ID, Reason: "damaged packaging"}
	input.OrderInfo.InvoiceNumber = "INV-100"
	input.OrderInfo.Vendor = "MedSupply"
	input.OrderInfo.OrderDetails = "20 boxes"

	ret, err := svc.Create(ctx, input, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ret.InvoiceNumber != "INV-100" {
		t.Errorf("invoice = %q, want INV-100", ret.InvoiceNumber)
	}
	if ret.Status != models.ReturnStatusPending {
		t.Errorf("status = %q, want %q", ret.Status, models.ReturnStatusPending)
	}

	cancelled, err := orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if cancelled.Status != models.OrderStatusCancelled {
		t.Errorf("order status = %q, want %q", cancelled.Status, models.OrderStatusCancelled)
	}

	if got := countLogs(t, db, models.LogTypeReturn); got != 1 {
		t.Errorf("return logs = %d, want 1", got)
	}
}

func TestReturnCreateMissingOrderCreatesNothing(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewReturnService(repositories.NewReturnRepository(db), newAuditService(db))
	ctx := context.Background()

	input := &CreateReturnInput{OrderID: 999, Reason: "damaged packaging"}
	input.OrderInfo.InvoiceNumber = "INV-404"

	_, err := svc.Create(ctx, input, "alice")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}

	var count int64
	if err := db.Model(&models.Return{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("returns = %d, want 0 (creation must roll back)", count)
	}
	if got := countLogs(t, db, models.LogTypeReturn); got != 0 {
		t.Errorf("return logs = %d, want 0", got)
	}
}

func TestReturnChangeStatusAndDelete(t *testing.T) {
	db := setupTestDB(t, t.Name())
	orderRepo := repositories.NewOrderRepository(db)
	svc := NewReturnService(repositories.NewReturnRepository(db), newAuditService(db))
	ctx := context.Background()

	order := &models.Order{InvoiceNumber: "INV-200", Status: models.OrderStatusOpen}
	if err := orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	input := &CreateReturnInput{OrderID: order.ID, Reason: "expired"}
	input.OrderInfo.InvoiceNumber = "INV-200"
	ret, err := svc.Create(ctx, input, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.ChangeStatus(ctx, ret.ID, models.ReturnStatusApproved, "alice")
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if updated.Status != models.ReturnStatusApproved {
		t.Errorf("status = %q, want %q", updated.Status, models.ReturnStatusApproved)
	}

	// Idempotent re-apply
	if _, err := svc.ChangeStatus(ctx, ret.ID, models.ReturnStatusApproved, "alice"); err != nil {
		t.Fatalf("repeat change status: %v", err)
	}

	if _, err := svc.Delete(ctx, ret.ID, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Delete(ctx, ret.ID, "alice"); !errors.Is(err, domain.ErrReturnNotFound) {
		t.Fatalf("second delete err = %v, want ErrReturnNotFound", err)
	}
}
