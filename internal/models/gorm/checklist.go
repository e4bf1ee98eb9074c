package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardType struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CardType) TableName() string {
	return "card_types"
}

func (c *CardType) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Checklist is the master catalog entry for one specific card. Identity is
// (product line, card number, parallel); re-imports update in place rather
// than duplicate.
type Checklist struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	ProductLineID string    `gorm:"column:product_line_id;type:uuid;uniqueIndex:idx_checklist_identity" json:"product_line_id"`
	CardNumber    string    `gorm:"column:card_number;uniqueIndex:idx_checklist_identity" json:"card_number"`
	Parallel      string    `gorm:"column:parallel;uniqueIndex:idx_checklist_identity" json:"parallel"`
	PlayerID      *string   `gorm:"column:player_id;type:uuid" json:"player_id,omitempty"`
	CardTypeID    *string   `gorm:"column:card_type_id;type:uuid" json:"card_type_id,omitempty"`
	SerialRun     *int      `gorm:"column:serial_run" json:"serial_run,omitempty"`
	Autograph     bool      `gorm:"column:autograph;default:false" json:"autograph"`
	Relic         bool      `gorm:"column:relic;default:false" json:"relic"`
	Rookie        bool      `gorm:"column:rookie;default:false" json:"rookie"`
	Notes         string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	ProductLine ProductLine `gorm:"foreignKey:ProductLineID" json:"-"`
	Player      *Player     `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	CardType    *CardType   `gorm:"foreignKey:CardTypeID" json:"card_type,omitempty"`
}

func (Checklist) TableName() string {
	return "checklists"
}

func (c *Checklist) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
