package reporting

import (
	"context"

	"inventory-backend/internal/accounting"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const valuationSheet = "Valuation"

var valuationHeader = []any{
	"Barcode", "Name", "Brand", "Type", "Unit size",
	"Unit cost", "Stock", "Stock value", "Status",
}

// ValuationWorkbook renders the current stock valuation as a spreadsheet,
// one row per item followed by a totals row.
func (s *Service) ValuationWorkbook(ctx context.Context) (*excelize.File, error) {
	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", valuationSheet); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}
	if err := f.SetSheetRow(valuationSheet, "A1", &valuationHeader); err != nil {
		return nil, errors.Wrap(err, "write header")
	}

	values := make([]float64, 0, len(items))
	units := 0
	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			item.Barcode, item.Name, item.Brand, item.ItemType, item.UnitSize,
			item.UnitCost, item.StockLevel, accounting.RoundMoney(item.StockValue), string(item.Status),
		}
		if err := f.SetSheetRow(valuationSheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "write row for %s", item.Barcode)
		}
		values = append(values, item.StockValue)
		units += item.StockLevel
	}

	cell, _ := excelize.CoordinatesToCellName(1, len(items)+2)
	totals := []any{"Total", "", "", "", "", "", units, accounting.SumMoney(values...), ""}
	if err := f.SetSheetRow(valuationSheet, cell, &totals); err != nil {
		return nil, errors.Wrap(err, "write totals")
	}
	return f, nil
}
