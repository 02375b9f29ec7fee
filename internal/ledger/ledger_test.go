package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"inventory-backend/internal/accounting"
	"inventory-backend/internal/ledger"
	"inventory-backend/internal/models"
	"inventory-backend/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newLedger(t *testing.T) (*ledger.Ledger, *gorm.DB) {
	t.Helper()
	db := testsupport.NewDB(t)
	return ledger.New(db, testsupport.Logger(), ledger.WithClock(func() time.Time { return fixedNow })), db
}

func newItem(barcode, name string, stock int, totalCost float64) ledger.NewItem {
	return ledger.NewItem{
		Barcode:    barcode,
		Name:       name,
		Brand:      "Acme Supplies",
		ItemType:   "consumable",
		Attributes: map[string]any{"color": "blue", "sizes": []any{"S", "M"}},
		UnitSize:   "box",
		TotalCost:  totalCost,
		StockLevel: stock,
		MinStock:   2,
		MaxStock:   50,
	}
}

func mustCreate(t *testing.T, l *ledger.Ledger, in ledger.NewItem) *models.InventoryItem {
	t.Helper()
	item, err := l.CreateItem(context.Background(), in)
	require.NoError(t, err)
	return item
}

func loadItem(t *testing.T, db *gorm.DB, barcode string) models.InventoryItem {
	t.Helper()
	var item models.InventoryItem
	require.NoError(t, db.Where("barcode = ?", barcode).First(&item).Error)
	return item
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func movementsFor(t *testing.T, db *gorm.DB, itemID uint) []models.InventoryMovement {
	t.Helper()
	var mvs []models.InventoryMovement
	require.NoError(t, db.Where("item_id = ?", itemID).Order("id").Find(&mvs).Error)
	return mvs
}

func onShoppingList(t *testing.T, db *gorm.DB, itemID uint) bool {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.ShoppingListEntry{}).Where("item_id = ?", itemID).Count(&n).Error)
	return n == 1
}

func assertKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.EqualError(t, err, msg)
	assert.True(t, ledger.IsBusiness(err))
}

func TestCreateItem(t *testing.T) {
	l, db := newLedger(t)

	item := mustCreate(t, l, newItem("B1", "Widget", 10, 25.00))

	assert.Equal(t, 2.5, item.UnitCost)
	assert.Equal(t, 10, item.StockLevel)

	stored := loadItem(t, db, "B1")
	assert.Equal(t, 2.5, stored.UnitCost)
	assert.Equal(t, "blue", stored.Attributes["color"])
	assert.True(t, stored.CreatedAt.Equal(fixedNow))
	assert.True(t, stored.UpdatedAt.Equal(stored.CreatedAt))
	assert.Equal(t, accounting.StatusOK, accounting.ClassifyStatus(stored.StockLevel, stored.MinStock, stored.MaxStock))

	mvs := movementsFor(t, db, stored.ID)
	require.Len(t, mvs, 1)
	assert.Equal(t, 10, mvs[0].ChangeAmount)
	assert.Equal(t, "Initial stock", mvs[0].Reason)

	assert.False(t, onShoppingList(t, db, stored.ID))
}

func TestCreateItemRoundsUnitCost(t *testing.T) {
	l, _ := newLedger(t)

	item := mustCreate(t, l, newItem("C1", "Gloves", 3, 1.00))
	assert.Equal(t, 0.3333, item.UnitCost)
}

func TestCreateItemRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ledger.NewItem)
		msg    string
	}{
		{name: "zero stock", mutate: func(in *ledger.NewItem) { in.StockLevel = 0 }, msg: "Stock level must be greater than zero"},
		{name: "negative stock", mutate: func(in *ledger.NewItem) { in.StockLevel = -4 }, msg: "Stock level must be greater than zero"},
		{name: "negative min", mutate: func(in *ledger.NewItem) { in.MinStock = -1 }, msg: "Invalid stock thresholds"},
		{name: "zero max", mutate: func(in *ledger.NewItem) { in.MinStock, in.MaxStock = 0, 0 }, msg: "Invalid stock thresholds"},
		{name: "min above max", mutate: func(in *ledger.NewItem) { in.MinStock, in.MaxStock = 10, 5 }, msg: "Invalid stock thresholds"},
		{name: "missing attributes", mutate: func(in *ledger.NewItem) { in.Attributes = nil }, msg: "Attributes must be an object"},
		{name: "blank barcode", mutate: func(in *ledger.NewItem) { in.Barcode = "  " }, msg: "Barcode must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, db := newLedger(t)
			in := newItem("B1", "Widget", 10, 25)
			tt.mutate(&in)

			_, err := l.CreateItem(context.Background(), in)
			assertKind(t, err, ledger.ErrInvalidInput, tt.msg)
			assert.Zero(t, count(t, db, &models.InventoryItem{}))
			assert.Zero(t, count(t, db, &models.InventoryMovement{}))
		})
	}
}

func TestCreateItemAcceptsEqualThresholds(t *testing.T) {
	l, _ := newLedger(t)
	in := newItem("B1", "Widget", 5, 10)
	in.MinStock, in.MaxStock = 5, 5

	item := mustCreate(t, l, in)
	assert.Equal(t, accounting.StatusLow, accounting.ClassifyStatus(item.StockLevel, item.MinStock, item.MaxStock))
}

func TestCreateItemDuplicateBarcode(t *testing.T) {
	l, db := newLedger(t)
	mustCreate(t, l, newItem("B1", "Widget", 10, 25))

	_, err := l.CreateItem(context.Background(), newItem("B1", "Other", 3, 9))
	assertKind(t, err, ledger.ErrConflict, "Item with the provided barcode already exists")

	assert.Equal(t, int64(1), count(t, db, &models.InventoryItem{}))
	assert.Equal(t, int64(1), count(t, db, &models.InventoryMovement{}))
	assert.Equal(t, "Widget", loadItem(t, db, "B1").Name)
}

func TestAdjustStock(t *testing.T) {
	l, db := newLedger(t)
	item := mustCreate(t, l, newItem("B1", "Widget", 10, 25))
	ctx := context.Background()

	stock, err := l.AdjustStock(ctx, "B1", -10, "used")
	require.NoError(t, err)
	assert.Equal(t, 0, stock)
	assert.True(t, onShoppingList(t, db, item.ID))

	stored := loadItem(t, db, "B1")
	assert.Equal(t, 0, stored.StockLevel)
	assert.Equal(t, accounting.StatusLow, accounting.ClassifyStatus(stored.StockLevel, stored.MinStock, stored.MaxStock))

	stock, err = l.AdjustStock(ctx, "B1", 4, "restock")
	require.NoError(t, err)
	assert.Equal(t, 4, stock)
	assert.False(t, onShoppingList(t, db, item.ID))

	mvs := movementsFor(t, db, item.ID)
	require.Len(t, mvs, 3)
	assert.Equal(t, -10, mvs[1].ChangeAmount)
	assert.Equal(t, "used", mvs[1].Reason)
	assert.Equal(t, 4, mvs[2].ChangeAmount)
	assert.Equal(t, "restock", mvs[2].Reason)
}

func TestAdjustStockRefreshesUpdatedAt(t *testing.T) {
	db := testsupport.NewDB(t)
	clock := fixedNow
	l := ledger.New(db, testsupport.Logger(), ledger.WithClock(func() time.Time { return clock }))
	mustCreate(t, l, newItem("B1", "Widget", 10, 25))

	clock = fixedNow.Add(time.Hour)
	_, err := l.AdjustStock(context.Background(), "B1", 1, "found one")
	require.NoError(t, err)

	stored := loadItem(t, db, "B1")
	assert.True(t, stored.CreatedAt.Equal(fixedNow))
	assert.True(t, stored.UpdatedAt.Equal(fixedNow.Add(time.Hour)))
}

func TestAdjustStockRejections(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		delta   int
		reason  string
		kind    error
		msg     string
	}{
		{name: "zero delta", barcode: "B1", delta: 0, reason: "noop", kind: ledger.ErrInvalidInput, msg: "Delta cannot be zero"},
		{name: "blank reason", barcode: "B1", delta: 1, reason: "   ", kind: ledger.ErrInvalidInput, msg: "Reason must not be empty"},
		{name: "unknown barcode", barcode: "NOPE", delta: 1, reason: "restock", kind: ledger.ErrNotFound, msg: "Item not found"},
		{name: "overdraw", barcode: "B1", delta: -11, reason: "used", kind: ledger.ErrConflict, msg: "Insufficient stock for the adjustment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, db := newLedger(t)
			item := mustCreate(t, l, newItem("B1", "Widget", 10, 25))

			_, err := l.AdjustStock(context.Background(), tt.barcode, tt.delta, tt.reason)
			assertKind(t, err, tt.kind, tt.msg)

			assert.Equal(t, 10, loadItem(t, db, "B1").StockLevel)
			assert.Len(t, movementsFor(t, db, item.ID), 1)
			assert.False(t, onShoppingList(t, db, item.ID))
		})
	}
}

func TestConcurrentAdjustmentsNeverOverdraw(t *testing.T) {
	l, db := newLedger(t)
	item := mustCreate(t, l, newItem("B1", "Widget", 5, 10))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.AdjustStock(context.Background(), "B1", -1, "pick")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, ledger.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 5, conflicts)
	assert.Equal(t, 0, loadItem(t, db, "B1").StockLevel)
	assert.Len(t, movementsFor(t, db, item.ID), 6)
	assert.True(t, onShoppingList(t, db, item.ID))
}

func TestRecordUsage(t *testing.T) {
	l, db := newLedger(t)
	b1 := mustCreate(t, l, newItem("B1", "Widget", 10, 25.00))
	b2 := mustCreate(t, l, newItem("B2", "Gadget", 5, 20.00))
	require.Equal(t, 4.0, b2.UnitCost)

	total, err := l.RecordUsage(context.Background(), ledger.Usage{
		ClientName:  "Acme",
		UsageDate:   "2024-03-01",
		BeforeState: "full shelf",
		AfterState:  "half shelf",
		Lines: []ledger.UsageLine{
			{Barcode: "B1", Amount: 3},
			{Barcode: "B2", Amount: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 15.5, total)

	var records []models.UsageRecord
	require.NoError(t, db.Preload("Items").Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].ClientName)
	assert.Equal(t, "full shelf", records[0].BeforeState)
	assert.Equal(t, 15.5, records[0].TotalCost)
	require.Len(t, records[0].Items, 2)
	assert.Equal(t, 7.5, records[0].Items[0].Cost)
	assert.Equal(t, 8.0, records[0].Items[1].Cost)

	assert.Equal(t, 7, loadItem(t, db, "B1").StockLevel)
	assert.Equal(t, 3, loadItem(t, db, "B2").StockLevel)

	mv1 := movementsFor(t, db, b1.ID)
	require.Len(t, mv1, 2)
	assert.Equal(t, -3, mv1[1].ChangeAmount)
	assert.Equal(t, "Usage: Acme", mv1[1].Reason)
	mv2 := movementsFor(t, db, b2.ID)
	require.Len(t, mv2, 2)
	assert.Equal(t, -2, mv2[1].ChangeAmount)
}

func TestRecordUsageDrainingStockAddsToShoppingList(t *testing.T) {
	l, db := newLedger(t)
	item := mustCreate(t, l, newItem("B1", "Widget", 4, 10))

	_, err := l.RecordUsage(context.Background(), ledger.Usage{
		ClientName: "Acme",
		Lines:      []ledger.UsageLine{{Barcode: "B1", Amount: 4}},
	})
	require.NoError(t, err)
	assert.True(t, onShoppingList(t, db, item.ID))
}

func TestRecordUsageTotalIsRoundedOnce(t *testing.T) {
	l, db := newLedger(t)
	mustCreate(t, l, newItem("C1", "Gloves", 3, 1.00))

	total, err := l.RecordUsage(context.Background(), ledger.Usage{
		ClientName: "Acme",
		Lines: []ledger.UsageLine{
			{Barcode: "C1", Amount: 1},
			{Barcode: "C1", Amount: 1},
		},
	})
	require.NoError(t, err)

	// 0.3333 + 0.3333 rounds to 0.67 while each stored line rounds to 0.33
	assert.Equal(t, 0.67, total)
	var items []models.UsageItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 0.33, items[0].Cost)
	assert.Equal(t, 0.33, items[1].Cost)
	assert.Equal(t, 1, loadItem(t, db, "C1").StockLevel)
}

func TestRecordUsageRejectionsLeaveStoreUntouched(t *testing.T) {
	tests := []struct {
		name  string
		lines []ledger.UsageLine
		kind  error
		msg   string
	}{
		{name: "no lines", lines: nil, kind: ledger.ErrInvalidInput, msg: "Items must be a non-empty list"},
		{name: "zero amount", lines: []ledger.UsageLine{{Barcode: "B1", Amount: 0}}, kind: ledger.ErrInvalidInput, msg: "Item amount must be greater than zero"},
		{name: "unknown barcode before zero amount", lines: []ledger.UsageLine{{Barcode: "ZZ", Amount: 1}, {Barcode: "B1", Amount: 0}}, kind: ledger.ErrNotFound, msg: "Item with barcode ZZ not found"},
		{name: "zero amount before unknown barcode", lines: []ledger.UsageLine{{Barcode: "B1", Amount: 0}, {Barcode: "ZZ", Amount: 1}}, kind: ledger.ErrInvalidInput, msg: "Item amount must be greater than zero"},
		{name: "unknown barcode", lines: []ledger.UsageLine{{Barcode: "B1", Amount: 1}, {Barcode: "ZZ", Amount: 1}}, kind: ledger.ErrNotFound, msg: "Item with barcode ZZ not found"},
		{name: "second line under-stocked", lines: []ledger.UsageLine{{Barcode: "B1", Amount: 2}, {Barcode: "B2", Amount: 6}}, kind: ledger.ErrConflict, msg: "Insufficient stock for Gadget"},
		{name: "repeated barcode overdraws", lines: []ledger.UsageLine{{Barcode: "B2", Amount: 3}, {Barcode: "B2", Amount: 3}}, kind: ledger.ErrConflict, msg: "Insufficient stock for Gadget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, db := newLedger(t)
			mustCreate(t, l, newItem("B1", "Widget", 10, 25))
			mustCreate(t, l, newItem("B2", "Gadget", 5, 20))

			_, err := l.RecordUsage(context.Background(), ledger.Usage{ClientName: "Acme", Lines: tt.lines})
			assertKind(t, err, tt.kind, tt.msg)

			assert.Equal(t, 10, loadItem(t, db, "B1").StockLevel)
			assert.Equal(t, 5, loadItem(t, db, "B2").StockLevel)
			assert.Equal(t, int64(2), count(t, db, &models.InventoryMovement{}))
			assert.Zero(t, count(t, db, &models.UsageRecord{}))
			assert.Zero(t, count(t, db, &models.UsageItem{}))
			assert.Zero(t, count(t, db, &models.ShoppingListEntry{}))
		})
	}
}

func TestOutOfStockScenario(t *testing.T) {
	l, db := newLedger(t)
	ctx := context.Background()
	b1 := mustCreate(t, l, newItem("B1", "Widget", 10, 25.00))
	mustCreate(t, l, newItem("B2", "Gadget", 1, 4))

	_, err := l.AdjustStock(ctx, "B1", -10, "used")
	require.NoError(t, err)
	require.True(t, onShoppingList(t, db, b1.ID))

	_, err = l.RecordUsage(ctx, ledger.Usage{
		ClientName: "Acme",
		Lines:      []ledger.UsageLine{{Barcode: "B2", Amount: 2}},
	})
	assertKind(t, err, ledger.ErrConflict, "Insufficient stock for Gadget")

	stored := loadItem(t, db, "B1")
	assert.Equal(t, 0, stored.StockLevel)
	assert.True(t, onShoppingList(t, db, b1.ID))
	assert.Len(t, movementsFor(t, db, b1.ID), 2)
}

func TestUpdateItem(t *testing.T) {
	l, db := newLedger(t)
	item := mustCreate(t, l, newItem("B1", "Widget", 10, 25))

	err := l.UpdateItem(context.Background(), "B1", map[string]any{
		"name":        "Widget Pro",
		"attributes":  map[string]any{"color": "red"},
		"unit_cost":   "3.75",
		"min_stock":   float64(1),
		"max_stock":   "20",
		"stock_level": 999,
		"barcode":     "B9",
	})
	require.NoError(t, err)

	stored := loadItem(t, db, "B1")
	assert.Equal(t, "Widget Pro", stored.Name)
	assert.Equal(t, "Acme Supplies", stored.Brand)
	assert.Equal(t, "red", stored.Attributes["color"])
	assert.Equal(t, 3.75, stored.UnitCost)
	assert.Equal(t, 1, stored.MinStock)
	assert.Equal(t, 20, stored.MaxStock)
	assert.Equal(t, 10, stored.StockLevel)
	assert.Len(t, movementsFor(t, db, item.ID), 1)
}

func TestUpdateItemRejections(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		fields  map[string]any
		kind    error
		msg     string
	}{
		{name: "unknown barcode checked first", barcode: "NOPE", fields: map[string]any{}, kind: ledger.ErrNotFound, msg: "Item not found"},
		{name: "nothing recognised", barcode: "B1", fields: map[string]any{"stock_level": 3}, kind: ledger.ErrInvalidInput, msg: "No valid fields to update"},
		{name: "attributes not a map", barcode: "B1", fields: map[string]any{"attributes": []any{"x"}}, kind: ledger.ErrInvalidInput, msg: "Attributes must be an object"},
		{name: "unit cost not numeric", barcode: "B1", fields: map[string]any{"unit_cost": "cheap"}, kind: ledger.ErrInvalidInput, msg: "Unit cost must be numeric"},
		{name: "min not integral", barcode: "B1", fields: map[string]any{"min_stock": 1.5}, kind: ledger.ErrInvalidInput, msg: "Minimum stock must be integer"},
		{name: "max not numeric", barcode: "B1", fields: map[string]any{"max_stock": true}, kind: ledger.ErrInvalidInput, msg: "Maximum stock must be integer"},
		{name: "merged min above existing max", barcode: "B1", fields: map[string]any{"min_stock": 60}, kind: ledger.ErrInvalidInput, msg: "Invalid stock thresholds"},
		{name: "name not a string", barcode: "B1", fields: map[string]any{"name": 12}, kind: ledger.ErrInvalidInput, msg: "Name must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, db := newLedger(t)
			mustCreate(t, l, newItem("B1", "Widget", 10, 25))

			err := l.UpdateItem(context.Background(), tt.barcode, tt.fields)
			assertKind(t, err, tt.kind, tt.msg)

			stored := loadItem(t, db, "B1")
			assert.Equal(t, "Widget", stored.Name)
			assert.Equal(t, 2, stored.MinStock)
			assert.Equal(t, 50, stored.MaxStock)
			assert.Equal(t, 2.5, stored.UnitCost)
		})
	}
}

func TestStoreFailureIsNotABusinessError(t *testing.T) {
	l, db := newLedger(t)
	require.NoError(t, db.Migrator().DropTable(&models.InventoryMovement{}))

	_, err := l.CreateItem(context.Background(), newItem("B1", "Widget", 10, 25))
	require.Error(t, err)
	assert.False(t, ledger.IsBusiness(err))
	assert.NotErrorIs(t, err, ledger.ErrConflict)

	// the item insert rolled back with the failed movement insert
	assert.Zero(t, count(t, db, &models.InventoryItem{}))
}

func TestStoreFailureRollsBackStockChanges(t *testing.T) {
	tests := []struct {
		name  string
		drop  any
		write func(l *ledger.Ledger) error
	}{
		{
			name: "usage with shopping list gone",
			drop: &models.ShoppingListEntry{},
			write: func(l *ledger.Ledger) error {
				_, err := l.RecordUsage(context.Background(), ledger.Usage{
					ClientName: "Acme",
					Lines: []ledger.UsageLine{
						{Barcode: "B2", Amount: 2},
						{Barcode: "B1", Amount: 3},
						{Barcode: "B1", Amount: 7},
					},
				})
				return err
			},
		},
		{
			name: "usage with usage items gone",
			drop: &models.UsageItem{},
			write: func(l *ledger.Ledger) error {
				_, err := l.RecordUsage(context.Background(), ledger.Usage{
					ClientName: "Acme",
					Lines: []ledger.UsageLine{
						{Barcode: "B1", Amount: 3},
						{Barcode: "B2", Amount: 2},
					},
				})
				return err
			},
		},
		{
			name: "adjust with shopping list gone",
			drop: &models.ShoppingListEntry{},
			write: func(l *ledger.Ledger) error {
				_, err := l.AdjustStock(context.Background(), "B1", -4, "used")
				return err
			},
		},
		{
			name: "adjust with movements gone",
			drop: &models.InventoryMovement{},
			write: func(l *ledger.Ledger) error {
				_, err := l.AdjustStock(context.Background(), "B2", 3, "restock")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, db := newLedger(t)
			mustCreate(t, l, newItem("B1", "Widget", 10, 25))
			mustCreate(t, l, newItem("B2", "Gadget", 5, 20))

			var movementsBefore int64
			if _, ok := tt.drop.(*models.InventoryMovement); !ok {
				movementsBefore = count(t, db, &models.InventoryMovement{})
			}
			require.NoError(t, db.Migrator().DropTable(tt.drop))

			err := tt.write(l)
			require.Error(t, err)
			assert.False(t, ledger.IsBusiness(err))

			assert.Equal(t, 10, loadItem(t, db, "B1").StockLevel)
			assert.Equal(t, 5, loadItem(t, db, "B2").StockLevel)
			assert.Zero(t, count(t, db, &models.UsageRecord{}))
			if _, ok := tt.drop.(*models.InventoryMovement); !ok {
				assert.Equal(t, movementsBefore, count(t, db, &models.InventoryMovement{}))
			}
			if _, ok := tt.drop.(*models.UsageItem); !ok {
				assert.Zero(t, count(t, db, &models.UsageItem{}))
			}
		})
	}
}

func TestRecordUsageListedInAnyOrder(t *testing.T) {
	l, db := newLedger(t)
	mustCreate(t, l, newItem("B1", "Widget", 10, 25))
	mustCreate(t, l, newItem("B2", "Gadget", 5, 20))

	total, err := l.RecordUsage(context.Background(), ledger.Usage{
		ClientName: "Acme",
		Lines: []ledger.UsageLine{
			{Barcode: "B2", Amount: 1},
			{Barcode: "B1", Amount: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, total)

	var items []models.UsageItem
	require.NoError(t, db.Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, loadItem(t, db, "B2").ID, items[0].ItemID)
	assert.Equal(t, 4.0, items[0].Cost)
	assert.Equal(t, loadItem(t, db, "B1").ID, items[1].ItemID)
	assert.Equal(t, 5.0, items[1].Cost)
}
