package ledger

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const msgInsufficientAdjust = "Insufficient stock for the adjustment"

// AdjustStock applies a signed delta to one item and returns the new level.
// Positive deltas restock, negative ones consume or correct.
func (l *Ledger) AdjustStock(ctx context.Context, barcode string, delta int, reason string) (int, error) {
	if delta == 0 {
		return 0, invalidInput("Delta cannot be zero")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return 0, invalidInput("Reason must not be empty")
	}

	var newStock int
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, barcode)
		if err != nil {
			return err
		}
		if item == nil {
			return notFound(msgItemNotFound)
		}
		if item.StockLevel+delta < 0 {
			return conflict(msgInsufficientAdjust)
		}

		now := l.timestamp()
		stock, ok, err := applyStockDelta(tx, item.ID, delta, now)
		if err != nil {
			return err
		}
		if !ok {
			return conflict(msgInsufficientAdjust)
		}
		if err := appendMovement(tx, item.ID, delta, reason, now); err != nil {
			return err
		}
		if err := reconcileShoppingList(tx, item.ID, stock, now); err != nil {
			return err
		}
		newStock = stock
		return nil
	})
	if err != nil {
		l.logRejection("adjust stock", barcode, err)
		return 0, err
	}

	l.log.WithFields(logrus.Fields{
		"barcode":   barcode,
		"delta":     delta,
		"new_stock": newStock,
	}).Info("stock adjusted")
	return newStock, nil
}
