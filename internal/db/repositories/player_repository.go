package repositories

import (
	"context"
	"fmt"

	gormModels "cardvault/internal/models/gorm"

	"gorm.io/gorm"
)

type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// ListAll returns the full registry; the import pipeline preloads its
// normalized-name cache from this at the start of a run.
func (r *PlayerRepository) ListAll(ctx context.Context) ([]gormModels.Player, error) {
	var players []gormModels.Player
	if err := r.db.WithContext(ctx).Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (r *PlayerRepository) Create(ctx context.Context, player *gormModels.Player) error {
	if err := r.db.WithContext(ctx).Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*gormModels.Player, error) {
	var player gormModels.Player
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&player).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("player not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}
	return &player, nil
}

// Search matches against both display and normalized names.
func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]gormModels.Player, error) {
	if limit <= 0 {
		limit = 50
	}
	var players []gormModels.Player
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR normalized_name LIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	return players, nil
}
