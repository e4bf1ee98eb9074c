package services

import (
	"context"
	"strings"
	"testing"

	"cardvault/internal/importer"
	gormModels "cardvault/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Brand{},
		&gormModels.ProductLine{},
		&gormModels.Player{},
		&gormModels.CardType{},
		&gormModels.Checklist{},
		&gormModels.InventoryItem{},
		&gormModels.Sale{},
		&gormModels.GradingSubmission{},
		&gormModels.Consignment{},
		&gormModels.User{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func setupProductLine(t *testing.T, db *gorm.DB) *gormModels.ProductLine {
	brand := &gormModels.Brand{Name: "Topps"}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("Failed to create brand: %v", err)
	}
	line := &gormModels.ProductLine{BrandID: brand.ID, Name: "Chrome", Year: 2023}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("Failed to create product line: %v", err)
	}
	return line
}

const checklistCSV = `Card #,Player,Team,Parallel,Auto,RC
1,Mike Trout,Angels,Base,,RC
2,Ronald Acuña Jr.,Braves,Gold /50,auto,
3,Shohei Ohtani,Dodgers,,,
`

func TestImportService_ChecklistCreateThenUpdate(t *testing.T) {
	db := setupTestDB(t)
	line := setupProductLine(t, db)
	service := NewImportService(db, importer.DefaultConfig(), nil)
	ctx := context.Background()

	first, err := service.ImportChecklist(ctx, strings.NewReader(checklistCSV), "checklist.csv", line.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.TotalRows != 3 {
		t.Errorf("Expected 3 rows, got %d", first.TotalRows)
	}
	if first.CardsCreated != 3 || first.CardsUpdated != 0 {
		t.Errorf("First run: expected 3 created / 0 updated, got %d / %d", first.CardsCreated, first.CardsUpdated)
	}
	if first.PlayersCreated != 3 {
		t.Errorf("First run: expected 3 players created, got %d", first.PlayersCreated)
	}
	if len(first.Errors) != 0 {
		t.Errorf("Expected no row errors, got %v", first.Errors)
	}

	// Re-importing the same file must update in place, not duplicate.
	second, err := service.ImportChecklist(ctx, strings.NewReader(checklistCSV), "checklist.csv", line.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.CardsCreated != 0 || second.CardsUpdated != 3 {
		t.Errorf("Second run: expected 0 created / 3 updated, got %d / %d", second.CardsCreated, second.CardsUpdated)
	}
	if second.PlayersCreated != 0 || second.PlayersMatched != 3 {
		t.Errorf("Second run: expected matched players, got created=%d matched=%d", second.PlayersCreated, second.PlayersMatched)
	}

	var cardCount int64
	db.Model(&gormModels.Checklist{}).Count(&cardCount)
	if cardCount != 3 {
		t.Errorf("Expected 3 checklist records, got %d", cardCount)
	}
	var playerCount int64
	db.Model(&gormModels.Player{}).Count(&playerCount)
	if playerCount != 3 {
		t.Errorf("Expected 3 players, got %d", playerCount)
	}

	// Serial parsed out of the parallel name survives persistence.
	var gold gormModels.Checklist
	if err := db.Where("card_number = ?", "2").First(&gold).Error; err != nil {
		t.Fatalf("Failed to fetch card 2: %v", err)
	}
	if gold.SerialRun == nil || *gold.SerialRun != 50 {
		t.Errorf("Expected serial run 50, got %v", gold.SerialRun)
	}
	if !gold.Autograph {
		t.Error("Expected autograph flag persisted")
	}
}

func TestImportService_RowFailuresDoNotAbort(t *testing.T) {
	db := setupTestDB(t)
	line := setupProductLine(t, db)
	service := NewImportService(db, importer.DefaultConfig(), nil)

	csvData := "Card #,Player\n1,Mike Trout\n,Missing Number\n3,Aaron Judge\n"

	result, err := service.ImportChecklist(context.Background(), strings.NewReader(csvData), "bad.csv", line.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.TotalRows != 3 {
		t.Errorf("Expected 3 rows, got %d", result.TotalRows)
	}
	if result.CardsCreated != 2 {
		t.Errorf("Expected 2 cards created, got %d", result.CardsCreated)
	}
	if result.RowsSkipped != 1 {
		t.Errorf("Expected 1 row skipped, got %d", result.RowsSkipped)
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Row 2: missing card number" {
		t.Errorf("Unexpected errors: %v", result.Errors)
	}
}

func TestImportService_DedupsPlayerSpellings(t *testing.T) {
	db := setupTestDB(t)
	line := setupProductLine(t, db)
	service := NewImportService(db, importer.DefaultConfig(), nil)

	csvData := "Card #,Player\n1,Ronald Acuña Jr.\n2,Ronald Acuna\n3,RONALD  ACUNA JR\n"

	result, err := service.ImportChecklist(context.Background(), strings.NewReader(csvData), "players.csv", line.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.PlayersCreated != 1 {
		t.Errorf("Expected 1 player created across spellings, got %d", result.PlayersCreated)
	}
	if result.PlayersMatched != 2 {
		t.Errorf("Expected 2 players matched, got %d", result.PlayersMatched)
	}

	var playerCount int64
	db.Model(&gormModels.Player{}).Count(&playerCount)
	if playerCount != 1 {
		t.Errorf("Expected a single player record, got %d", playerCount)
	}
}

func TestImportService_UnsupportedFileType(t *testing.T) {
	db := setupTestDB(t)
	line := setupProductLine(t, db)
	service := NewImportService(db, importer.DefaultConfig(), nil)

	_, err := service.ImportChecklist(context.Background(), strings.NewReader("data"), "upload.docx", line.ID)
	if err == nil {
		t.Fatal("Expected an error for an unsupported extension")
	}
	if !importer.IsFileError(err) {
		t.Errorf("Expected a file-level error, got %v", err)
	}
}

func TestImportService_UnknownProductLine(t *testing.T) {
	db := setupTestDB(t)
	service := NewImportService(db, importer.DefaultConfig(), nil)

	_, err := service.ImportChecklist(context.Background(), strings.NewReader(checklistCSV), "checklist.csv", "no-such-line")
	if err == nil {
		t.Fatal("Expected an error for an unknown product line")
	}
}

func TestImportService_Preview(t *testing.T) {
	db := setupTestDB(t)
	service := NewImportService(db, importer.DefaultConfig(), nil)

	preview, err := service.PreviewChecklist(context.Background(), strings.NewReader(checklistCSV), "checklist.csv")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if preview.TotalRows != 3 {
		t.Errorf("Expected 3 rows, got %d", preview.TotalRows)
	}
	if !preview.Columns.Has(importer.ColCardNumber) {
		t.Error("Expected card number column detected")
	}

	// Preview writes nothing.
	var cardCount int64
	db.Model(&gormModels.Checklist{}).Count(&cardCount)
	if cardCount != 0 {
		t.Errorf("Expected no persisted checklists after preview, got %d", cardCount)
	}
}
