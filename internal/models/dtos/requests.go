package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type CreateProductLineRequest struct {
	Brand string `json:"brand"`
	Name  string `json:"name"`
	Year  int    `json:"year"`
}

type CreateInventoryItemRequest struct {
	ChecklistID   string          `json:"checklist_id"`
	Condition     string          `json:"condition"`
	Grade         *string         `json:"grade,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchasedAt   *time.Time      `json:"purchased_at,omitempty"`
	Source        string          `json:"source"`
	Location      string          `json:"location"`
	Notes         string          `json:"notes"`
}

type CreateGradingSubmissionRequest struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Company         string          `json:"company"`
	Cost            decimal.Decimal `json:"cost"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
}

type UpdateGradingSubmissionRequest struct {
	Status        string     `json:"status"`
	ReturnedAt    *time.Time `json:"returned_at,omitempty"`
	GradeReceived *string    `json:"grade_received,omitempty"`
}

type UpdateConsignmentRequest struct {
	Status      string          `json:"status"`
	ListedPrice decimal.Decimal `json:"listed_price"`
	EndedAt     *time.Time      `json:"ended_at,omitempty"`
}

type CreateConsignmentRequest struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Consignee       string          `json:"consignee"`
	ListedPrice     decimal.Decimal `json:"listed_price"`
	CommissionPct   decimal.Decimal `json:"commission_pct"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
}
