package models

// All lists every persisted model in dependency order for migration.
func All() []any {
	return []any{
		&InventoryItem{},
		&UsageRecord{},
		&UsageItem{},
		&ShoppingListEntry{},
		&InventoryMovement{},
	}
}
