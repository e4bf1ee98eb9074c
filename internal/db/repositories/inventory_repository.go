package repositories

import (
	"context"
	"fmt"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, item *gormModels.InventoryItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *gormModels.InventoryItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*gormModels.InventoryItem, error) {
	var item gormModels.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Checklist").
		Preload("Checklist.Player").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inventory item not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch inventory item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory item not found: %s", id)
	}
	return nil
}

func (r *InventoryRepository) List(ctx context.Context, status string, limit, offset int) ([]gormModels.InventoryItem, error) {
	if limit <= 0 {
		limit = 100
	}
	q := r.db.WithContext(ctx).
		Preload("Checklist").
		Preload("Checklist.Player").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []gormModels.InventoryItem
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// ListUnsoldWithCard returns every item not yet marked sold, with checklist
// and player preloaded. The sales import matches report titles against
// these.
func (r *InventoryRepository) ListUnsoldWithCard(ctx context.Context) ([]gormModels.InventoryItem, error) {
	var items []gormModels.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Checklist").
		Preload("Checklist.Player").
		Preload("Checklist.ProductLine").
		Where("status <> ?", gormModels.InventorySold).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unsold inventory: %w", err)
	}
	return items, nil
}
