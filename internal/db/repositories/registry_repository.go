package repositories

import (
	"context"
	"fmt"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

// RegistryRepository handles the reference entities an import resolves
// against: brands, product lines and card types.
type RegistryRepository struct {
	db *gorm.DB
}

func NewRegistryRepository(db *gorm.DB) *RegistryRepository {
	return &RegistryRepository{db: db}
}

func (r *RegistryRepository) FindOrCreateBrand(ctx context.Context, name string) (*gormModels.Brand, error) {
	var brand gormModels.Brand
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&brand).Error
	if err == nil {
		return &brand, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to fetch brand: %w", err)
	}

	brand = gormModels.Brand{Name: name}
	if err := r.db.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &brand, nil
}

func (r *RegistryRepository) FindOrCreateProductLine(ctx context.Context, brandID, name string, year int) (*gormModels.ProductLine, error) {
	var line gormModels.ProductLine
	err := r.db.WithContext(ctx).
		Where("brand_id = ? AND name = ? AND year = ?", brandID, name, year).
		First(&line).Error
	if err == nil {
		return &line, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to fetch product line: %w", err)
	}

	line = gormModels.ProductLine{BrandID: brandID, Name: name, Year: year}
	if err := r.db.WithContext(ctx).Create(&line).Error; err != nil {
		return nil, fmt.Errorf("failed to create product line: %w", err)
	}
	return &line, nil
}

func (r *RegistryRepository) GetProductLine(ctx context.Context, id string) (*gormModels.ProductLine, error) {
	var line gormModels.ProductLine
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("id = ?", id).
		First(&line).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product line not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch product line: %w", err)
	}
	return &line, nil
}

func (r *RegistryRepository) ListProductLines(ctx context.Context) ([]gormModels.ProductLine, error) {
	var lines []gormModels.ProductLine
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Order("year DESC, name ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list product lines: %w", err)
	}
	return lines, nil
}

func (r *RegistryRepository) ListCardTypes(ctx context.Context) ([]gormModels.CardType, error) {
	var types []gormModels.CardType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list card types: %w", err)
	}
	return types, nil
}

func (r *RegistryRepository) FindOrCreateCardType(ctx context.Context, name string) (*gormModels.CardType, error) {
	var ct gormModels.CardType
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&ct).Error
	if err == nil {
		return &ct, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to fetch card type: %w", err)
	}

	ct = gormModels.CardType{Name: name}
	if err := r.db.WithContext(ctx).Create(&ct).Error; err != nil {
		return nil, fmt.Errorf("failed to create card type: %w", err)
	}
	return &ct, nil
}
