// Package accounting holds the pure cost and stock-status rules of the ledger.
package accounting

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusLow       Status = "low"
	StatusOK        Status = "ok"
	StatusOverstock Status = "overstock"
)

const (
	unitCostPlaces = 4
	moneyPlaces    = 2
)

var ErrInvalidStock = errors.New("initial stock must be greater than zero")

// ComputeUnitCost spreads the purchase cost over the initial stock,
// rounded to 4 decimal places.
func ComputeUnitCost(totalCost float64, initialStock int) (float64, error) {
	if initialStock <= 0 {
		return 0, ErrInvalidStock
	}
	cost := decimal.NewFromFloat(totalCost).
		Div(decimal.NewFromInt(int64(initialStock))).
		Round(unitCostPlaces)
	return cost.InexactFloat64(), nil
}

// ClassifyStatus reports low before overstock, so min == max == stock is low.
func ClassifyStatus(stockLevel, minStock, maxStock int) Status {
	switch {
	case stockLevel <= minStock:
		return StatusLow
	case stockLevel >= maxStock:
		return StatusOverstock
	default:
		return StatusOK
	}
}

// StockValue is intentionally unrounded; callers round totals.
func StockValue(unitCost float64, stockLevel int) float64 {
	return unitCost * float64(stockLevel)
}

// LineCost is the exact cost of consuming amount units.
func LineCost(amount int, unitCost float64) decimal.Decimal {
	return decimal.NewFromInt(int64(amount)).Mul(decimal.NewFromFloat(unitCost))
}

// Money rounds to cents.
func Money(d decimal.Decimal) float64 {
	return d.Round(moneyPlaces).InexactFloat64()
}

// RoundMoney rounds a float amount to cents.
func RoundMoney(v float64) float64 {
	return Money(decimal.NewFromFloat(v))
}

// SumMoney adds the values exactly and rounds the total once.
func SumMoney(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Money(total)
}
