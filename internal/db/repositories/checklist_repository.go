package repositories

import (
	"context"
	"fmt"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// FindByIdentity looks up a checklist by its uniqueness triple. Returns
// (nil, nil) when no record exists, so callers can distinguish absence from
// failure.
func (r *ChecklistRepository) FindByIdentity(ctx context.Context, productLineID, cardNumber, parallel string) (*gormModels.Checklist, error) {
	var checklist gormModels.Checklist
	err := r.db.WithContext(ctx).
		Where("product_line_id = ? AND card_number = ? AND parallel = ?", productLineID, cardNumber, parallel).
		First(&checklist).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch checklist: %w", err)
	}
	return &checklist, nil
}

func (r *ChecklistRepository) Create(ctx context.Context, checklist *gormModels.Checklist) error {
	if err := r.db.WithContext(ctx).Create(checklist).Error; err != nil {
		return fmt.Errorf("failed to create checklist: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields only; identity columns and
// timestamps other than updated_at are left alone.
func (r *ChecklistRepository) Update(ctx context.Context, checklist *gormModels.Checklist) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Checklist{}).
		Where("id = ?", checklist.ID).
		Select("player_id", "card_type_id", "serial_run", "autograph", "relic", "rookie", "notes").
		Updates(checklist).Error
	if err != nil {
		return fmt.Errorf("failed to update checklist: %w", err)
	}
	return nil
}

func (r *ChecklistRepository) GetByID(ctx context.Context, id string) (*gormModels.Checklist, error) {
	var checklist gormModels.Checklist
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("CardType").
		Where("id = ?", id).
		First(&checklist).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("checklist not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch checklist: %w", err)
	}
	return &checklist, nil
}

func (r *ChecklistRepository) ListByProductLine(ctx context.Context, productLineID string, limit, offset int) ([]gormModels.Checklist, error) {
	if limit <= 0 {
		limit = 100
	}
	var checklists []gormModels.Checklist
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("CardType").
		Where("product_line_id = ?", productLineID).
		Order("card_number ASC, parallel ASC").
		Limit(limit).
		Offset(offset).
		Find(&checklists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	return checklists, nil
}

func (r *ChecklistRepository) CountByProductLine(ctx context.Context, productLineID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Checklist{}).
		Where("product_line_id = ?", productLineID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count checklists: %w", err)
	}
	return count, nil
}
