package services

import (
	"context"
	"time"

	"cardvault/internal/common"
	"cardvault/internal/constants"
	gormModels "cardvault/internal/models/gorm"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CollectionStats is the aggregate view of the collection: simple counts and
// sums over persisted records.
type CollectionStats struct {
	Checklists    int64           `json:"checklists"`
	Players       int64           `json:"players"`
	ItemsOwned    int64           `json:"items_owned"`
	ItemsSold     int64           `json:"items_sold"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalProceeds decimal.Decimal `json:"total_proceeds"`
	TotalFees     decimal.Decimal `json:"total_fees"`
}

type CollectionStatsService struct {
	db    *gorm.DB
	cache common.CacheInterface
}

func NewCollectionStatsService(db *gorm.DB, cache common.CacheInterface) *CollectionStatsService {
	return &CollectionStatsService{db: db, cache: cache}
}

// GetStats computes the aggregates, cached for a minute since every import
// invalidates them anyway.
func (s *CollectionStatsService) GetStats(ctx context.Context) (*CollectionStats, error) {
	key := string(constants.CachePrefixCollectionStats) + "all"
	val, err := s.cache.GetOrSet(key, time.Minute, func() (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}
	stats, ok := val.(*CollectionStats)
	if !ok {
		// Cache backends that round-trip through JSON hand back raw bytes;
		// recompute rather than guess.
		return s.compute(ctx)
	}
	return stats, nil
}

func (s *CollectionStatsService) compute(ctx context.Context) (*CollectionStats, error) {
	stats := &CollectionStats{
		TotalCost:     decimal.Zero,
		TotalProceeds: decimal.Zero,
		TotalFees:     decimal.Zero,
	}
	db := s.db.WithContext(ctx)

	if err := db.Model(&gormModels.Checklist{}).Count(&stats.Checklists).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gormModels.Player{}).Count(&stats.Players).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gormModels.InventoryItem{}).
		Where("status <> ?", gormModels.InventorySold).
		Count(&stats.ItemsOwned).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gormModels.InventoryItem{}).
		Where("status = ?", gormModels.InventorySold).
		Count(&stats.ItemsSold).Error; err != nil {
		return nil, err
	}

	var items []gormModels.InventoryItem
	if err := db.Select("purchase_price").Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		stats.TotalCost = stats.TotalCost.Add(item.PurchasePrice)
	}

	var sales []gormModels.Sale
	if err := db.Select("sale_price", "fees").Find(&sales).Error; err != nil {
		return nil, err
	}
	for _, sale := range sales {
		stats.TotalProceeds = stats.TotalProceeds.Add(sale.SalePrice)
		stats.TotalFees = stats.TotalFees.Add(sale.Fees)
	}

	return stats, nil
}
