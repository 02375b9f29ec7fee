package models

import (
	"time"

	"gorm.io/datatypes"
)

// InventoryItem is a stocked product addressed externally by its barcode.
type InventoryItem struct {
	ID         uint              `gorm:"primaryKey" json:"id" db:"id"`
	Barcode    string            `gorm:"size:64;not null;uniqueIndex" json:"barcode" db:"barcode"`
	Name       string            `gorm:"not null" json:"name" db:"name"`
	Brand      string            `gorm:"not null" json:"brand" db:"brand"`
	ItemType   string            `gorm:"not null" json:"item_type" db:"item_type"`
	Attributes datatypes.JSONMap `gorm:"not null" json:"attributes" db:"attributes"`
	UnitSize   string            `gorm:"not null" json:"unit_size" db:"unit_size"`
	UnitCost   float64           `gorm:"not null" json:"unit_cost" db:"unit_cost"`
	StockLevel int               `gorm:"not null" json:"stock_level" db:"stock_level"`
	MinStock   int               `gorm:"not null" json:"min_stock" db:"min_stock"`
	MaxStock   int               `gorm:"not null" json:"max_stock" db:"max_stock"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" db:"updated_at"`
}
