package services

import (
	"context"
	"testing"
	"time"

	"cardvault/internal/common"
	gormModels "cardvault/internal/models/gorm"

	"github.com/shopspring/decimal"
)

func TestCollectionStatsService_GetStats(t *testing.T) {
	db := setupTestDB(t)
	item := setupInventoryItem(t, db, "Mike Trout", "27")

	db.Model(item).Update("purchase_price", decimal.RequireFromString("12.50"))

	sold := &gormModels.InventoryItem{
		ChecklistID: item.ChecklistID,
		Status:      gormModels.InventorySold,
	}
	if err := db.Create(sold).Error; err != nil {
		t.Fatalf("Failed to create sold item: %v", err)
	}
	sale := &gormModels.Sale{
		InventoryItemID: &sold.ID,
		OrderID:         "123-456",
		ItemTitle:       "Mike Trout #27",
		Quantity:        1,
		SalePrice:       decimal.RequireFromString("45.00"),
		Fees:            decimal.RequireFromString("6.50"),
	}
	if err := db.Create(sale).Error; err != nil {
		t.Fatalf("Failed to create sale: %v", err)
	}

	cache := common.NewCacheService(time.Minute, 10*time.Minute)
	service := NewCollectionStatsService(db, cache)

	stats, err := service.GetStats(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.Checklists != 1 {
		t.Errorf("Expected 1 checklist, got %d", stats.Checklists)
	}
	if stats.Players != 1 {
		t.Errorf("Expected 1 player, got %d", stats.Players)
	}
	if stats.ItemsOwned != 1 {
		t.Errorf("Expected 1 owned item, got %d", stats.ItemsOwned)
	}
	if stats.ItemsSold != 1 {
		t.Errorf("Expected 1 sold item, got %d", stats.ItemsSold)
	}
	if !stats.TotalProceeds.Equal(decimal.RequireFromString("45.00")) {
		t.Errorf("Expected proceeds 45.00, got %s", stats.TotalProceeds)
	}
	if !stats.TotalFees.Equal(decimal.RequireFromString("6.50")) {
		t.Errorf("Expected fees 6.50, got %s", stats.TotalFees)
	}

	// A second read comes from the cache, not a recomputation over new rows.
	extra := &gormModels.InventoryItem{ChecklistID: item.ChecklistID, Status: gormModels.InventoryOwned}
	if err := db.Create(extra).Error; err != nil {
		t.Fatalf("Failed to create extra item: %v", err)
	}
	cached, err := service.GetStats(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached.ItemsOwned != 1 {
		t.Errorf("Expected cached value 1, got %d", cached.ItemsOwned)
	}
}
