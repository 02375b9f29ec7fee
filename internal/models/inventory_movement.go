package models

import "time"

// InventoryMovement is an append-only record of one stock_level change.
// Positive ChangeAmount is stock in, negative is stock out.
type InventoryMovement struct {
	ID           uint           `gorm:"primaryKey" json:"id" db:"id"`
	ItemID       uint           `gorm:"index;not null" json:"item_id" db:"item_id"`
	Item         *InventoryItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-" db:"-"`
	ChangeAmount int            `gorm:"not null" json:"change_amount" db:"change_amount"`
	Reason       string         `gorm:"not null" json:"reason" db:"reason"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at" db:"created_at"`
}
