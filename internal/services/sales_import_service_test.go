package services

import (
	"context"
	"strings"
	"testing"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

func setupInventoryItem(t *testing.T, db *gorm.DB, playerName, cardNumber string) *gormModels.InventoryItem {
	line := setupProductLine(t, db)

	player := &gormModels.Player{Name: playerName, NormalizedName: strings.ToLower(playerName)}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	card := &gormModels.Checklist{
		ProductLineID: line.ID,
		CardNumber:    cardNumber,
		PlayerID:      &player.ID,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("Failed to create checklist: %v", err)
	}
	item := &gormModels.InventoryItem{
		ChecklistID: card.ID,
		Status:      gormModels.InventoryOwned,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to create inventory item: %v", err)
	}
	return item
}

const salesReportCSV = `Seller report generated by the marketplace
Report for Jan-01-24 to Jan-31-24
Order Number,Item Title,Quantity,Sale Price,Fees,Sale Date
123-456,2023 Topps Chrome Mike Trout #27 Angels,1,$45.00,$6.50,Jan-15-24
789-012,Unrelated vintage lot,1,$10.00,$1.00,Jan-20-24
`

func TestSalesImportService_MatchesInventory(t *testing.T) {
	db := setupTestDB(t)
	item := setupInventoryItem(t, db, "Mike Trout", "27")
	service := NewSalesImportService(db, nil)
	ctx := context.Background()

	result, err := service.ImportSalesReport(ctx, strings.NewReader(salesReportCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.TotalRows != 2 {
		t.Errorf("Expected 2 rows, got %d", result.TotalRows)
	}
	if result.SalesCreated != 2 || result.SalesMatched != 0 {
		t.Errorf("Expected 2 created / 0 matched, got %d / %d", result.SalesCreated, result.SalesMatched)
	}

	// The Trout listing links to the inventory item and marks it sold.
	var sale gormModels.Sale
	if err := db.Where("order_id = ?", "123-456").First(&sale).Error; err != nil {
		t.Fatalf("Failed to fetch sale: %v", err)
	}
	if sale.InventoryItemID == nil || *sale.InventoryItemID != item.ID {
		t.Errorf("Expected sale linked to item %s, got %v", item.ID, sale.InventoryItemID)
	}

	var updated gormModels.InventoryItem
	if err := db.Where("id = ?", item.ID).First(&updated).Error; err != nil {
		t.Fatalf("Failed to fetch item: %v", err)
	}
	if updated.Status != gormModels.InventorySold {
		t.Errorf("Expected item sold, got %s", updated.Status)
	}

	// The unrelated lot stays unlinked.
	var other gormModels.Sale
	if err := db.Where("order_id = ?", "789-012").First(&other).Error; err != nil {
		t.Fatalf("Failed to fetch sale: %v", err)
	}
	if other.InventoryItemID != nil {
		t.Errorf("Expected no inventory link, got %v", other.InventoryItemID)
	}
}

func TestSalesImportService_ReimportUpdates(t *testing.T) {
	db := setupTestDB(t)
	setupInventoryItem(t, db, "Mike Trout", "27")
	service := NewSalesImportService(db, nil)
	ctx := context.Background()

	if _, err := service.ImportSalesReport(ctx, strings.NewReader(salesReportCSV)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := service.ImportSalesReport(ctx, strings.NewReader(salesReportCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.SalesCreated != 0 || second.SalesMatched != 2 {
		t.Errorf("Re-import: expected 0 created / 2 matched, got %d / %d", second.SalesCreated, second.SalesMatched)
	}

	var saleCount int64
	db.Model(&gormModels.Sale{}).Count(&saleCount)
	if saleCount != 2 {
		t.Errorf("Expected 2 sale records after re-import, got %d", saleCount)
	}
}

func TestSalesImportService_RowFailuresDoNotAbort(t *testing.T) {
	db := setupTestDB(t)
	service := NewSalesImportService(db, nil)

	data := "Order Number,Item Title,Sale Price\n,No Order Id,$5.00\n123,Some Card,$5.00\n"

	result, err := service.ImportSalesReport(context.Background(), strings.NewReader(data))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.TotalRows != 2 {
		t.Errorf("Expected 2 rows, got %d", result.TotalRows)
	}
	if result.SalesCreated != 1 {
		t.Errorf("Expected 1 sale created, got %d", result.SalesCreated)
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Row 1: missing order number" {
		t.Errorf("Unexpected errors: %v", result.Errors)
	}
}
