package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryStatus string

const (
	InventoryOwned     InventoryStatus = "owned"
	InventoryConsigned InventoryStatus = "consigned"
	InventorySubmitted InventoryStatus = "submitted"
	InventorySold      InventoryStatus = "sold"
)

// InventoryItem is one physical copy of a checklist card.
type InventoryItem struct {
	ID            string          `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	ChecklistID   string          `gorm:"column:checklist_id;type:uuid;index" json:"checklist_id"`
	Condition     string          `gorm:"column:condition" json:"condition,omitempty"`
	Grade         *string         `gorm:"column:grade" json:"grade,omitempty"`
	Status        InventoryStatus `gorm:"column:status;default:owned" json:"status"`
	PurchasePrice decimal.Decimal `gorm:"column:purchase_price;type:numeric(12,2)" json:"purchase_price"`
	PurchasedAt   *time.Time      `gorm:"column:purchased_at" json:"purchased_at,omitempty"`
	Source        string          `gorm:"column:source" json:"source,omitempty"`
	Location      string          `gorm:"column:location" json:"location,omitempty"`
	Notes         string          `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Checklist Checklist `gorm:"foreignKey:ChecklistID" json:"checklist,omitempty"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Sale records one sold item. OrderID plus ItemTitle identify a sale across
// report re-imports.
type Sale struct {
	ID              string          `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	InventoryItemID *string         `gorm:"column:inventory_item_id;type:uuid" json:"inventory_item_id,omitempty"`
	OrderID         string          `gorm:"column:order_id;uniqueIndex:idx_sale_identity" json:"order_id"`
	ItemTitle       string          `gorm:"column:item_title;uniqueIndex:idx_sale_identity" json:"item_title"`
	Quantity        int             `gorm:"column:quantity;default:1" json:"quantity"`
	SalePrice       decimal.Decimal `gorm:"column:sale_price;type:numeric(12,2)" json:"sale_price"`
	Fees            decimal.Decimal `gorm:"column:fees;type:numeric(12,2)" json:"fees"`
	SoldAt          *time.Time      `gorm:"column:sold_at" json:"sold_at,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID" json:"-"`
}

func (Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
