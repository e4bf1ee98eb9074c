package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	ProductLines []ProductLine `gorm:"foreignKey:BrandID" json:"product_lines,omitempty"`
}

func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// ProductLine is one release within a brand, e.g. "2023 Topps Chrome".
type ProductLine struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	BrandID   string    `gorm:"column:brand_id;type:uuid;uniqueIndex:idx_product_line_identity" json:"brand_id"`
	Name      string    `gorm:"column:name;uniqueIndex:idx_product_line_identity" json:"name"`
	Year      int       `gorm:"column:year;uniqueIndex:idx_product_line_identity" json:"year"`
	Sport     string    `gorm:"column:sport;default:baseball" json:"sport"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Brand      Brand       `gorm:"foreignKey:BrandID" json:"-"`
	Checklists []Checklist `gorm:"foreignKey:ProductLineID" json:"-"`
}

func (ProductLine) TableName() string {
	return "product_lines"
}

func (p *ProductLine) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
