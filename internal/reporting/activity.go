package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ShoppingList returns the out-of-stock items, most recently added first.
func (s *Service) ShoppingList(ctx context.Context) ([]ShoppingEntry, error) {
	entries := []ShoppingEntry{}
	err := s.db.SelectContext(ctx, &entries, `
		SELECT sl.id, sl.item_id, sl.added_at, ii.name, ii.barcode, ii.brand, ii.item_type
		FROM shopping_list sl
		JOIN inventory_items ii ON ii.id = sl.item_id
		ORDER BY sl.added_at DESC, sl.id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "select shopping list")
	}
	return entries, nil
}

// Activity returns the latest movements across all items.
func (s *Service) Activity(ctx context.Context) ([]Movement, error) {
	return s.recentMovements(ctx, activityLimit)
}

func (s *Service) recentMovements(ctx context.Context, limit int) ([]Movement, error) {
	movements := []Movement{}
	query := s.db.Rebind(`
		SELECT im.id, im.item_id, im.change_amount, im.reason, im.created_at, ii.name
		FROM inventory_movements im
		JOIN inventory_items ii ON ii.id = im.item_id
		ORDER BY im.created_at DESC, im.id DESC
		LIMIT ?`)
	if err := s.db.SelectContext(ctx, &movements, query, limit); err != nil {
		return nil, errors.Wrap(err, "select movements")
	}
	return movements, nil
}

type usageLine struct {
	UsageID    uint   `db:"usage_id"`
	Name       string `db:"name"`
	AmountUsed int    `db:"amount_used"`
}

func (s *Service) recentUsage(ctx context.Context, limit int) ([]UsageSummary, error) {
	records := []UsageSummary{}
	query := s.db.Rebind(`
		SELECT id, client_name, usage_date, total_cost, created_at
		FROM usage_records
		ORDER BY created_at DESC, id DESC
		LIMIT ?`)
	if err := s.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, errors.Wrap(err, "select usage records")
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]uint, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	query, args, err := sqlx.In(`
		SELECT ui.usage_id, ii.name, ui.amount_used
		FROM usage_items ui
		JOIN inventory_items ii ON ii.id = ui.item_id
		WHERE ui.usage_id IN (?)
		ORDER BY ui.id`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "build usage lines query")
	}

	var lines []usageLine
	if err := s.db.SelectContext(ctx, &lines, s.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "select usage lines")
	}

	details := make(map[uint][]string, len(records))
	for _, l := range lines {
		details[l.UsageID] = append(details[l.UsageID], fmt.Sprintf("%s x%d", l.Name, l.AmountUsed))
	}
	for i := range records {
		records[i].Details = strings.Join(details[records[i].ID], "; ")
	}
	return records, nil
}
