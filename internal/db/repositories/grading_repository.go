package repositories

import (
	"context"
	"fmt"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

// GradingRepository covers grading submissions and consignments; both hang
// off inventory items.
type GradingRepository struct {
	db *gorm.DB
}

func NewGradingRepository(db *gorm.DB) *GradingRepository {
	return &GradingRepository{db: db}
}

func (r *GradingRepository) CreateSubmission(ctx context.Context, sub *gormModels.GradingSubmission) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create grading submission: %w", err)
	}
	return nil
}

func (r *GradingRepository) UpdateSubmission(ctx context.Context, sub *gormModels.GradingSubmission) error {
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		return fmt.Errorf("failed to update grading submission: %w", err)
	}
	return nil
}

func (r *GradingRepository) GetSubmission(ctx context.Context, id string) (*gormModels.GradingSubmission, error) {
	var sub gormModels.GradingSubmission
	err := r.db.WithContext(ctx).
		Preload("InventoryItem").
		Where("id = ?", id).
		First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("grading submission not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch grading submission: %w", err)
	}
	return &sub, nil
}

func (r *GradingRepository) ListSubmissions(ctx context.Context, status string) ([]gormModels.GradingSubmission, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var subs []gormModels.GradingSubmission
	if err := q.Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list grading submissions: %w", err)
	}
	return subs, nil
}

func (r *GradingRepository) CreateConsignment(ctx context.Context, c *gormModels.Consignment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create consignment: %w", err)
	}
	return nil
}

func (r *GradingRepository) UpdateConsignment(ctx context.Context, c *gormModels.Consignment) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("failed to update consignment: %w", err)
	}
	return nil
}

func (r *GradingRepository) GetConsignment(ctx context.Context, id string) (*gormModels.Consignment, error) {
	var c gormModels.Consignment
	err := r.db.WithContext(ctx).
		Preload("InventoryItem").
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("consignment not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch consignment: %w", err)
	}
	return &c, nil
}

func (r *GradingRepository) ListConsignments(ctx context.Context, status string) ([]gormModels.Consignment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var consignments []gormModels.Consignment
	if err := q.Find(&consignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list consignments: %w", err)
	}
	return consignments, nil
}
