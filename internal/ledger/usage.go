package ledger

import (
	"context"
	"sort"

	"inventory-backend/internal/accounting"
	"inventory-backend/internal/models"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Usage is one client consumption event. BeforeState and AfterState are
// stored verbatim.
type Usage struct {
	ClientName  string
	UsageDate   string
	BeforeState string
	AfterState  string
	Lines       []UsageLine
}

type UsageLine struct {
	Barcode string
	Amount  int
}

// validated line, priced at the unit cost seen during validation
type pricedLine struct {
	item   *models.InventoryItem
	amount int
	cost   decimal.Decimal
}

// RecordUsage validates every line, then writes the usage record, its items,
// the stock decrements, movements and shopping list changes as one unit.
// It returns the total cost rounded to cents.
func (l *Ledger) RecordUsage(ctx context.Context, u Usage) (float64, error) {
	if len(u.Lines) == 0 {
		return 0, invalidInput("Items must be a non-empty list")
	}

	var total float64
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, sum, err := priceLines(tx, u.Lines)
		if err != nil {
			return err
		}
		total = accounting.Money(sum)

		now := l.timestamp()
		record := models.UsageRecord{
			ClientName:  u.ClientName,
			UsageDate:   u.UsageDate,
			BeforeState: u.BeforeState,
			AfterState:  u.AfterState,
			TotalCost:   total,
			CreatedAt:   now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return errors.Wrap(err, "insert usage record")
		}

		reason := "Usage: " + u.ClientName
		for _, line := range lines {
			ui := models.UsageItem{
				UsageID:    record.ID,
				ItemID:     line.item.ID,
				AmountUsed: line.amount,
				Cost:       accounting.Money(line.cost),
			}
			if err := tx.Create(&ui).Error; err != nil {
				return errors.Wrap(err, "insert usage item")
			}

			stock, ok, err := applyStockDelta(tx, line.item.ID, -line.amount, now)
			if err != nil {
				return err
			}
			if !ok {
				return conflict("Insufficient stock for %s", line.item.Name)
			}
			if err := appendMovement(tx, line.item.ID, -line.amount, reason, now); err != nil {
				return err
			}
			if err := reconcileShoppingList(tx, line.item.ID, stock, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.logRejection("record usage", "", err)
		return 0, err
	}

	l.log.WithFields(logrus.Fields{
		"client":     u.ClientName,
		"lines":      len(u.Lines),
		"total_cost": total,
	}).Info("usage recorded")
	return total, nil
}

// priceLines resolves and checks every line before anything is written.
// Lines are checked in request order; the first bad line decides the error.
// A barcode listed more than once is checked against its combined amount.
func priceLines(tx *gorm.DB, lines []UsageLine) ([]pricedLine, decimal.Decimal, error) {
	sum := decimal.Zero
	items, err := lockLines(tx, lines)
	if err != nil {
		return nil, sum, err
	}

	requested := map[string]int{}
	priced := make([]pricedLine, 0, len(lines))
	for _, line := range lines {
		if line.Amount <= 0 {
			return nil, sum, invalidInput("Item amount must be greater than zero")
		}
		item := items[line.Barcode]
		if item == nil {
			return nil, sum, notFound("Item with barcode %s not found", line.Barcode)
		}

		requested[line.Barcode] += line.Amount
		if item.StockLevel < requested[line.Barcode] {
			return nil, sum, conflict("Insufficient stock for %s", item.Name)
		}

		cost := accounting.LineCost(line.Amount, item.UnitCost)
		sum = sum.Add(cost)
		priced = append(priced, pricedLine{item: item, amount: line.Amount, cost: cost})
	}
	return priced, sum, nil
}

// lockLines locks each distinct barcode once, in sorted order, so concurrent
// usages touching the same items always acquire row locks in the same order.
// Unknown barcodes map to nil.
func lockLines(tx *gorm.DB, lines []UsageLine) (map[string]*models.InventoryItem, error) {
	items := make(map[string]*models.InventoryItem, len(lines))
	barcodes := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, seen := items[line.Barcode]; !seen {
			items[line.Barcode] = nil
			barcodes = append(barcodes, line.Barcode)
		}
	}
	sort.Strings(barcodes)

	for _, barcode := range barcodes {
		item, err := lockItem(tx, barcode)
		if err != nil {
			return nil, err
		}
		items[barcode] = item
	}
	return items, nil
}
