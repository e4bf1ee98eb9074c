package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionShipped  SubmissionStatus = "shipped"
	SubmissionGrading  SubmissionStatus = "grading"
	SubmissionReturned SubmissionStatus = "returned"
)

// GradingSubmission tracks one item sent to a grading or authentication
// company.
type GradingSubmission struct {
	ID              string           `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	InventoryItemID string           `gorm:"column:inventory_item_id;type:uuid;index" json:"inventory_item_id"`
	Company         string           `gorm:"column:company" json:"company"`
	Status          SubmissionStatus `gorm:"column:status;default:pending" json:"status"`
	Cost            decimal.Decimal  `gorm:"column:cost;type:numeric(12,2)" json:"cost"`
	SubmittedAt     *time.Time       `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	ReturnedAt      *time.Time       `gorm:"column:returned_at" json:"returned_at,omitempty"`
	GradeReceived   *string          `gorm:"column:grade_received" json:"grade_received,omitempty"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"-"`
}

func (GradingSubmission) TableName() string {
	return "grading_submissions"
}

func (g *GradingSubmission) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

type ConsignmentStatus string

const (
	ConsignmentActive   ConsignmentStatus = "active"
	ConsignmentSold     ConsignmentStatus = "sold"
	ConsignmentReturned ConsignmentStatus = "returned"
)

// Consignment tracks one item placed with a consignment seller.
type Consignment struct {
	ID              string            `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	InventoryItemID string            `gorm:"column:inventory_item_id;type:uuid;index" json:"inventory_item_id"`
	Consignee       string            `gorm:"column:consignee" json:"consignee"`
	Status          ConsignmentStatus `gorm:"column:status;default:active" json:"status"`
	ListedPrice     decimal.Decimal   `gorm:"column:listed_price;type:numeric(12,2)" json:"listed_price"`
	CommissionPct   decimal.Decimal   `gorm:"column:commission_pct;type:numeric(5,2)" json:"commission_pct"`
	StartedAt       *time.Time        `gorm:"column:started_at" json:"started_at,omitempty"`
	EndedAt         *time.Time        `gorm:"column:ended_at" json:"ended_at,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"-"`
}

func (Consignment) TableName() string {
	return "consignments"
}

func (c *Consignment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
