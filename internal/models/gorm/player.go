package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player is one athlete in the registry. NormalizedName is the lossy dedup
// key the import pipeline matches against; the store enforces its
// uniqueness.
type Player struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name           string    `gorm:"column:name" json:"name"`
	NormalizedName string    `gorm:"column:normalized_name;uniqueIndex" json:"normalized_name"`
	Team           *string   `gorm:"column:team" json:"team,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
