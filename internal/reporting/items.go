package reporting

import (
	"context"

	"inventory-backend/internal/accounting"
	"inventory-backend/internal/models"

	"github.com/pkg/errors"
)

const itemColumns = `id, barcode, name, brand, item_type, attributes, unit_size,
	unit_cost, stock_level, min_stock, max_stock, created_at, updated_at`

func (s *Service) loadItems(ctx context.Context) ([]ItemView, error) {
	var rows []models.InventoryItem
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT `+itemColumns+` FROM inventory_items ORDER BY name, id`); err != nil {
		return nil, errors.Wrap(err, "select items")
	}

	views := make([]ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, newItemView(row))
	}
	return views, nil
}

// ListItems returns every item ordered by name.
func (s *Service) ListItems(ctx context.Context) ([]ItemView, error) {
	return s.loadItems(ctx)
}

// Dashboard computes the stock totals, threshold lists and recent history.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Items:     items,
		LowStock:  []ItemView{},
		Overstock: []ItemView{},
	}
	values := make([]float64, 0, len(items))
	for _, item := range items {
		values = append(values, item.StockValue)
		d.TotalUnits += item.StockLevel
		switch item.Status {
		case accounting.StatusLow:
			d.LowStock = append(d.LowStock, item)
		case accounting.StatusOverstock:
			d.Overstock = append(d.Overstock, item)
		}
	}
	d.TotalValue = accounting.SumMoney(values...)

	if d.RecentUsage, err = s.recentUsage(ctx, dashboardUsageLimit); err != nil {
		return nil, err
	}
	if d.Movements, err = s.recentMovements(ctx, dashboardMovementLimit); err != nil {
		return nil, err
	}
	return d, nil
}
