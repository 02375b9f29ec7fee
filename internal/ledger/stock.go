package ledger

import (
	"time"

	"inventory-backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockItem loads the item row and holds it for the rest of the transaction.
// SQLite ignores the locking clause; its single writer serializes instead.
func lockItem(tx *gorm.DB, barcode string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("barcode = ?", barcode).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load item %s", barcode)
	}
	return &item, nil
}

// applyStockDelta changes stock_level by delta, refusing to go below zero,
// and returns the stored level.
func applyStockDelta(tx *gorm.DB, itemID uint, delta int, now time.Time) (int, bool, error) {
	res := tx.Model(&models.InventoryItem{}).
		Where("id = ? AND stock_level + ? >= 0", itemID, delta).
		Updates(map[string]any{
			"stock_level": gorm.Expr("stock_level + ?", delta),
			"updated_at":  now,
		})
	if res.Error != nil {
		return 0, false, errors.Wrap(res.Error, "update stock level")
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}

	var stock int
	if err := tx.Model(&models.InventoryItem{}).
		Select("stock_level").
		Where("id = ?", itemID).
		Scan(&stock).Error; err != nil {
		return 0, false, errors.Wrap(err, "read stock level")
	}
	return stock, true, nil
}

func appendMovement(tx *gorm.DB, itemID uint, change int, reason string, now time.Time) error {
	mv := models.InventoryMovement{
		ItemID:       itemID,
		ChangeAmount: change,
		Reason:       reason,
		CreatedAt:    now,
	}
	if err := tx.Create(&mv).Error; err != nil {
		return errors.Wrap(err, "insert movement")
	}
	return nil
}

// reconcileShoppingList makes list membership match stock: an entry exists
// iff the item is out of stock.
func reconcileShoppingList(tx *gorm.DB, itemID uint, stock int, now time.Time) error {
	if stock == 0 {
		entry := models.ShoppingListEntry{ItemID: itemID, AddedAt: now}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			DoNothing: true,
		}).Create(&entry).Error
		return errors.Wrap(err, "add shopping list entry")
	}
	err := tx.Where("item_id = ?", itemID).Delete(&models.ShoppingListEntry{}).Error
	return errors.Wrap(err, "remove shopping list entry")
}
