package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cardvault/internal/db/repositories"
	"cardvault/internal/importer"
	"cardvault/internal/logging"
	"cardvault/internal/metrics"
	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

// SalesImportService reconciles marketplace sales reports: each report row
// is upserted as a Sale keyed on (order id, item title) and, when the
// listing title can be matched to an unsold inventory item, linked to it and
// the item marked sold.
type SalesImportService struct {
	db      *gorm.DB
	metrics *metrics.MetricsRegistry
}

func NewSalesImportService(db *gorm.DB, reg *metrics.MetricsRegistry) *SalesImportService {
	return &SalesImportService{db: db, metrics: reg}
}

func (s *SalesImportService) ImportSalesReport(ctx context.Context, file io.Reader) (*importer.Result, error) {
	start := time.Now()

	report, err := importer.ParseSalesReport(file)
	if err != nil {
		return nil, err
	}

	candidates, err := s.loadCandidates(ctx)
	if err != nil {
		return nil, err
	}

	result := &importer.Result{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		salesRepo := repositories.NewSalesRepository(tx)
		invRepo := repositories.NewInventoryRepository(tx)

		for _, row := range report.Rows {
			result.TotalRows++
			if err := s.reconcileSalesRow(ctx, salesRepo, invRepo, candidates, row, result); err != nil {
				result.AddRowError(row.Index, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sales import aborted: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ImportRowsProcessed.Add(float64(result.TotalRows))
		s.metrics.ImportDuration.WithLabelValues("sales").Observe(time.Since(start).Seconds())
	}
	logging.Info("Sales report import finished",
		"total_rows", result.TotalRows,
		"sales_created", result.SalesCreated,
		"sales_matched", result.SalesMatched,
		"rows_skipped", result.RowsSkipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (s *SalesImportService) reconcileSalesRow(
	ctx context.Context,
	salesRepo *repositories.SalesRepository,
	invRepo *repositories.InventoryRepository,
	candidates []saleCandidate,
	row importer.SalesRow,
	result *importer.Result,
) error {
	if row.OrderID == "" {
		return errors.New("missing order number")
	}
	if row.ItemTitle == "" {
		return errors.New("missing item title")
	}

	existing, err := salesRepo.FindByIdentity(ctx, row.OrderID, row.ItemTitle)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Quantity = row.Quantity
		existing.SalePrice = row.SalePrice
		existing.Fees = row.Fees
		existing.SoldAt = row.SoldAt
		if err := salesRepo.Update(ctx, existing); err != nil {
			return err
		}
		result.SalesMatched++
		return nil
	}

	sale := &gormModels.Sale{
		OrderID:   row.OrderID,
		ItemTitle: row.ItemTitle,
		Quantity:  row.Quantity,
		SalePrice: row.SalePrice,
		Fees:      row.Fees,
		SoldAt:    row.SoldAt,
	}

	if item := matchInventory(row.ItemTitle, candidates); item != nil {
		sale.InventoryItemID = &item.ID
		item.Status = gormModels.InventorySold
		if err := invRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err := salesRepo.Create(ctx, sale); err != nil {
		return err
	}
	result.SalesCreated++
	return nil
}

// saleCandidate is one unsold inventory item with the text fragments a
// listing title would contain.
type saleCandidate struct {
	item       *gormModels.InventoryItem
	playerName string
	cardNumber string
	parallel   string
}

func (s *SalesImportService) loadCandidates(ctx context.Context) ([]saleCandidate, error) {
	items, err := repositories.NewInventoryRepository(s.db).ListUnsoldWithCard(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]saleCandidate, 0, len(items))
	for i := range items {
		item := &items[i]
		c := saleCandidate{
			item:       item,
			cardNumber: strings.ToLower(item.Checklist.CardNumber),
			parallel:   strings.ToLower(item.Checklist.Parallel),
		}
		if item.Checklist.Player != nil {
			c.playerName = strings.ToLower(item.Checklist.Player.Name)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// matchInventory links a listing title to an inventory item when the title
// contains the player's name and the card number. The first candidate in
// load order wins.
func matchInventory(title string, candidates []saleCandidate) *gormModels.InventoryItem {
	t := strings.ToLower(title)
	for _, c := range candidates {
		if c.item.Status == gormModels.InventorySold {
			continue
		}
		if c.playerName == "" || c.cardNumber == "" {
			continue
		}
		if !strings.Contains(t, c.playerName) {
			continue
		}
		if containsCardNumber(t, c.cardNumber) {
			return c.item
		}
	}
	return nil
}

// containsCardNumber looks for the card number as its own token ("#150",
// "no. 150" or a bare "150"), not as a substring of a longer number.
func containsCardNumber(title, number string) bool {
	for _, tok := range strings.FieldsFunc(title, func(r rune) bool {
		return r == ' ' || r == '#' || r == ',' || r == '(' || r == ')'
	}) {
		if tok == number {
			return true
		}
	}
	return false
}
