// Package reporting answers the read-only questions about the ledger. It
// queries the store directly with sqlx and never writes.
package reporting

import (
	"context"
	"time"

	"inventory-backend/internal/accounting"
	"inventory-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const (
	dashboardUsageLimit    = 10
	dashboardMovementLimit = 10
	activityLimit          = 25
)

type Service struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Service {
	return &Service{db: db}
}

// ItemView is an item with its derived accounting fields.
type ItemView struct {
	models.InventoryItem
	StockValue float64           `json:"stock_value"`
	Status     accounting.Status `json:"status"`
}

func newItemView(item models.InventoryItem) ItemView {
	return ItemView{
		InventoryItem: item,
		StockValue:    accounting.StockValue(item.UnitCost, item.StockLevel),
		Status:        accounting.ClassifyStatus(item.StockLevel, item.MinStock, item.MaxStock),
	}
}

// Movement is a movement row joined with its item's name.
type Movement struct {
	ID           uint      `json:"id" db:"id"`
	ItemID       uint      `json:"item_id" db:"item_id"`
	ChangeAmount int       `json:"change_amount" db:"change_amount"`
	Reason       string    `json:"reason" db:"reason"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Name         string    `json:"name" db:"name"`
}

// UsageSummary is a usage record with its lines rendered as "name xN; ...".
type UsageSummary struct {
	ID         uint      `json:"id" db:"id"`
	ClientName string    `json:"client_name" db:"client_name"`
	UsageDate  string    `json:"usage_date" db:"usage_date"`
	TotalCost  float64   `json:"total_cost" db:"total_cost"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	Details    string    `json:"details" db:"-"`
}

type ShoppingEntry struct {
	ID       uint      `json:"id" db:"id"`
	ItemID   uint      `json:"item_id" db:"item_id"`
	AddedAt  time.Time `json:"added_at" db:"added_at"`
	Name     string    `json:"name" db:"name"`
	Barcode  string    `json:"barcode" db:"barcode"`
	Brand    string    `json:"brand" db:"brand"`
	ItemType string    `json:"item_type" db:"item_type"`
}

type Dashboard struct {
	TotalValue  float64        `json:"total_value"`
	TotalUnits  int            `json:"total_units"`
	Items       []ItemView     `json:"items"`
	LowStock    []ItemView     `json:"low_stock"`
	Overstock   []ItemView     `json:"overstock"`
	RecentUsage []UsageSummary `json:"recent_usage"`
	Movements   []Movement     `json:"movements"`
}

// Ping checks that the store answers.
func (s *Service) Ping(ctx context.Context) error {
	return errors.Wrap(s.db.PingContext(ctx), "ping store")
}
