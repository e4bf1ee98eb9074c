package repositories

import (
	"context"
	"fmt"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

// FindByIdentity looks a sale up by its (order id, item title) identity.
// Returns (nil, nil) when absent.
func (r *SalesRepository) FindByIdentity(ctx context.Context, orderID, itemTitle string) (*gormModels.Sale, error) {
	var sale gormModels.Sale
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND item_title = ?", orderID, itemTitle).
		First(&sale).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch sale: %w", err)
	}
	return &sale, nil
}

func (r *SalesRepository) Create(ctx context.Context, sale *gormModels.Sale) error {
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *SalesRepository) Update(ctx context.Context, sale *gormModels.Sale) error {
	if err := r.db.WithContext(ctx).Save(sale).Error; err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	return nil
}

func (r *SalesRepository) List(ctx context.Context, limit, offset int) ([]gormModels.Sale, error) {
	if limit <= 0 {
		limit = 100
	}
	var sales []gormModels.Sale
	err := r.db.WithContext(ctx).
		Order("sold_at DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
