package models

import "time"

// UsageRecord: one client consumption event (may span several items)
type UsageRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id" db:"id"`
	ClientName  string    `gorm:"not null" json:"client_name" db:"client_name"`
	UsageDate   string    `gorm:"not null" json:"usage_date" db:"usage_date"`
	BeforeState string    `gorm:"type:text;not null" json:"before_state" db:"before_state"`
	AfterState  string    `gorm:"type:text;not null" json:"after_state" db:"after_state"`
	TotalCost   float64   `gorm:"not null" json:"total_cost" db:"total_cost"`
	CreatedAt   time.Time `gorm:"index" json:"created_at" db:"created_at"`

	Items []UsageItem `gorm:"foreignKey:UsageID;constraint:OnDelete:CASCADE" json:"items,omitempty" db:"-"`
}

// UsageItem: each item line inside a usage record
type UsageItem struct {
	ID         uint           `gorm:"primaryKey" json:"id" db:"id"`
	UsageID    uint           `gorm:"index;not null" json:"usage_id" db:"usage_id"`
	ItemID     uint           `gorm:"index;not null" json:"item_id" db:"item_id"`
	Item       *InventoryItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-" db:"-"`
	AmountUsed int            `gorm:"not null" json:"amount_used" db:"amount_used"`
	Cost       float64        `gorm:"not null" json:"cost" db:"cost"` // round(AmountUsed * unit cost, 2)
}
