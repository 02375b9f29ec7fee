package models

import "time"

// ShoppingListEntry marks an item whose stock_level is currently zero.
type ShoppingListEntry struct {
	ID      uint           `gorm:"primaryKey" json:"id" db:"id"`
	ItemID  uint           `gorm:"not null;uniqueIndex" json:"item_id" db:"item_id"`
	Item    *InventoryItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-" db:"-"`
	AddedAt time.Time      `gorm:"not null;index" json:"added_at" db:"added_at"`
}

func (ShoppingListEntry) TableName() string { return "shopping_list" }
