package services

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
)

// StockCheckService runs a daily background job that scans the active
// inventory and records a summary log of low-stock and near-expiry items.
type StockCheckService struct {
	itemService *ItemService
	audit       *AuditService
	cron        *cron.Cron
}

// NewStockCheckService creates a new stock check service
func NewStockCheckService(itemService *ItemService, audit *AuditService) *StockCheckService {
	return &StockCheckService{
		itemService: itemService,
		audit:       audit,
		cron:        cron.New(),
	}
}

// Start schedules the daily stock check (08:30 every day)
func (s *StockCheckService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.runStockCheck)
	if err != nil {
		log.Printf("❌ Failed to schedule stock check: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 StockCheckService started (daily at 08:30)")
}

// Stop gracefully stops the scheduler
func (s *StockCheckService) Stop() {
	s.cron.Stop()
	log.Println("🛑 StockCheckService stopped")
}

func (s *StockCheckService) runStockCheck() {
	ctx := context.Background()

	warnings, err := s.itemService.Warnings(ctx)
	if err != nil {
		log.Printf("❌ Stock check query error: %v", err)
		return
	}

	lowStock := 0
	nearExpiry := 0
	for _, w := range warnings {
		switch w.WarningType {
		case models.WarningLowStock:
			lowStock++
		case models.WarningExpiry:
			nearExpiry++
		}
	}

	if lowStock == 0 && nearExpiry == 0 {
		log.Println("✅ Daily stock check: no warnings")
		return
	}

	message := fmt.Sprintf("Daily stock check: %d item(s) low on stock, %d item(s) expiring within 30 days on %s",
		lowStock, nearExpiry, Timestamp())
	s.audit.Record(ctx, models.LogTypeItem, models.LogActionUpdate, message)
	log.Printf("⚠️ Daily stock check: %d low stock, %d near expiry", lowStock, nearExpiry)
}
