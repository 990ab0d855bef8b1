package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
)

func TestItemCreateAppliesDefaults(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)

	item, err := svc.Create(context.Background(), &CreateItemInput{Name: "Aspirin", Qty: 100}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Shelf != "unknown" {
		t.Errorf("shelf = %q, want unknown", item.Shelf)
	}
	if item.Status != models.ItemStatusOnStock {
		t.Errorf("status = %q, want %q", item.Status, models.ItemStatusOnStock)
	}
	if item.Category != "other" {
		t.Errorf("category = %q, want other", item.Category)
	}
	if got := countLogs(t, db, models.LogTypeItem); got != 1 {
		t.Errorf("item logs = %d, want 1", got)
	}
}

func TestItemUseDecrementsStock(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, &CreateItemInput{Name: "Aspirin", Qty: 10}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	used, err := svc.Use(ctx, item.ID, 4, "alice")
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if used.Qty != 6 {
		t.Errorf("qty = %d, want 6", used.Qty)
	}
}

func TestItemUseInsufficientStock(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, &CreateItemInput{Name: "Aspirin", Qty: 3}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	logsBefore := countLogs(t, db, models.LogTypeItem)

	_, err = svc.Use(ctx, item.ID, 5, "alice")
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	// Stock untouched and no USE log written
	current, err := svc.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.Qty != 3 {
		t.Errorf("qty = %d, want 3", current.Qty)
	}
	if got := countLogs(t, db, models.LogTypeItem); got != logsBefore {
		t.Errorf("item logs = %d, want %d", got, logsBefore)
	}
}

func TestItemUseMissingItem(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)

	_, err := svc.Use(context.Background(), 999, 1, "alice")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestItemWarningsDuplicatesAndExpiry(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	// qty 1 with threshold 5 and expiry in 10 days: low stock AND expiring
	if _, err := svc.Create(ctx, &CreateItemInput{Name: "Amoxicillin", Qty: 1, LowStockWarningQty: 5, ExpiryDate: daysFromNow(10)}, "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	// healthy stock, expiry far away
	if _, err := svc.Create(ctx, &CreateItemInput{Name: "Ibuprofen", Qty: 50, LowStockWarningQty: 5, ExpiryDate: daysFromNow(90)}, "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	// no explicit threshold: the column default of 1 applies
	if _, err := svc.Create(ctx, &CreateItemInput{Name: "Paracetamol", Qty: 1}, "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}

	warnings, err := svc.Warnings(ctx)
	if err != nil {
		t.Fatalf("warnings: %v", err)
	}
	if len(warnings) != 3 {
		t.Fatalf("warnings = %d, want 3", len(warnings))
	}

	byName := map[string][]string{}
	for _, w := range warnings {
		byName[w.Name] = append(byName[w.Name], w.WarningType)
	}
	if got := byName["Amoxicillin"]; len(got) != 2 {
		t.Errorf("Amoxicillin warnings = %v, want both tags", got)
	}
	if got := byName["Paracetamol"]; len(got) != 1 || got[0] != models.WarningLowStock {
		t.Errorf("Paracetamol warnings = %v, want one low stock tag", got)
	}
	if len(byName["Ibuprofen"]) != 0 {
		t.Errorf("Ibuprofen warnings = %v, want none", byName["Ibuprofen"])
	}
}

func TestItemWarningsFallbackThreshold(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, &CreateItemInput{Name: "Cetirizine", Qty: 2}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Threshold cleared to zero: the fallback of 2 kicks in
	zero := 0
	if _, err := svc.Update(ctx, item.ID, &UpdateItemInput{LowStockWarningQty: &zero}, "alice"); err != nil {
		t.Fatalf("update: %v", err)
	}

	warnings, err := svc.Warnings(ctx)
	if err != nil {
		t.Fatalf("warnings: %v", err)
	}
	if len(warnings) != 1 || warnings[0].WarningType != models.WarningLowStock {
		t.Fatalf("warnings = %+v, want one low stock tag", warnings)
	}
}

func TestItemWarningsSkipArchived(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, &CreateItemInput{Name: "Aspirin", Qty: 1}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Archive(ctx, item.ID, true); err != nil {
		t.Fatalf("archive: %v", err)
	}

	warnings, err := svc.Warnings(ctx)
	if err != nil {
		t.Fatalf("warnings: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %d, want 0", len(warnings))
	}
}

func TestItemArchiveIdempotentAndUnaudited(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, &CreateItemInput{Name: "Aspirin", Qty: 10}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	logsBefore := countLogs(t, db, models.LogTypeItem)

	for i := 0; i < 2; i++ {
		archived, err := svc.Archive(ctx, item.ID, true)
		if err != nil {
			t.Fatalf("archive #%d: %v", i+1, err)
		}
		if !archived.Archived {
			t.Fatalf("archive #%d: flag not set", i+1)
		}
	}

	restored, err := svc.Archive(ctx, item.ID, false)
	if err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	if restored.Archived {
		t.Error("unarchive: flag still set")
	}

	if got := countLogs(t, db, models.LogTypeItem); got != logsBefore {
		t.Errorf("item logs = %d, want %d (archive is not audited)", got, logsBefore)
	}
}

func TestItemUpdatePartial(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, &CreateItemInput{Name: "Aspirin", Qty: 10, SKU: "ASP-01"}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	qty := 25
	updated, err := svc.Update(ctx, item.ID, &UpdateItemInput{Qty: &qty}, "alice")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Qty != 25 {
		t.Errorf("qty = %d, want 25", updated.Qty)
	}
	if updated.SKU != "ASP-01" {
		t.Errorf("sku = %q, want unchanged ASP-01", updated.SKU)
	}
}

func TestItemSearchMatchesNameAndSKU(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newItemService(db)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &CreateItemInput{Name: "Aspirin", Qty: 10, SKU: "ASP-01"}, "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, &CreateItemInput{Name: "Ibuprofen", Qty: 10, SKU: "IBU-01"}, "alice"); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.Search(ctx, "asp")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Aspirin" {
		t.Errorf("search(asp) = %d results, want Aspirin only", len(items))
	}

	items, err = svc.Search(ctx, "ibu-01")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Ibuprofen" {
		t.Errorf("search(ibu-01) = %d results, want Ibuprofen only", len(items))
	}
}
