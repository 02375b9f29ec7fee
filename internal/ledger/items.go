package ledger

import (
	"context"
	"strings"

	"inventory-backend/internal/accounting"
	"inventory-backend/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	reasonInitialStock = "Initial stock"

	msgDuplicateBarcode = "Item with the provided barcode already exists"
	msgInvalidThreshold = "Invalid stock thresholds"
	msgAttributesObject = "Attributes must be an object"
	msgItemNotFound     = "Item not found"
)

// NewItem is everything needed to register an item with its opening stock.
// Attributes must be non-nil; an empty map is fine.
type NewItem struct {
	Barcode    string
	Name       string
	Brand      string
	ItemType   string
	Attributes map[string]any
	UnitSize   string
	TotalCost  float64
	StockLevel int
	MinStock   int
	MaxStock   int
}

func validThresholds(minStock, maxStock int) bool {
	return minStock >= 0 && maxStock > 0 && maxStock >= minStock
}

// CreateItem inserts the item and its "Initial stock" movement together.
func (l *Ledger) CreateItem(ctx context.Context, in NewItem) (*models.InventoryItem, error) {
	unitCost, err := accounting.ComputeUnitCost(in.TotalCost, in.StockLevel)
	if err != nil {
		return nil, invalidInput("Stock level must be greater than zero")
	}
	if !validThresholds(in.MinStock, in.MaxStock) {
		return nil, invalidInput(msgInvalidThreshold)
	}
	if in.Attributes == nil {
		return nil, invalidInput(msgAttributesObject)
	}
	if strings.TrimSpace(in.Barcode) == "" {
		return nil, invalidInput("Barcode must not be empty")
	}

	now := l.timestamp()
	item := models.InventoryItem{
		Barcode:    in.Barcode,
		Name:       in.Name,
		Brand:      in.Brand,
		ItemType:   in.ItemType,
		Attributes: datatypes.JSONMap(in.Attributes),
		UnitSize:   in.UnitSize,
		UnitCost:   unitCost,
		StockLevel: in.StockLevel,
		MinStock:   in.MinStock,
		MaxStock:   in.MaxStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.InventoryItem{}).
			Where("barcode = ?", in.Barcode).
			Count(&existing).Error; err != nil {
			return errors.Wrap(err, "check barcode")
		}
		if existing > 0 {
			return conflict(msgDuplicateBarcode)
		}

		if err := tx.Create(&item).Error; err != nil {
			// lost a race with a concurrent create
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflict(msgDuplicateBarcode)
			}
			return errors.Wrap(err, "insert item")
		}
		return appendMovement(tx, item.ID, item.StockLevel, reasonInitialStock, now)
	})
	if err != nil {
		l.logRejection("create item", in.Barcode, err)
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"barcode":   item.Barcode,
		"stock":     item.StockLevel,
		"unit_cost": item.UnitCost,
	}).Info("item created")
	return &item, nil
}

// UpdateItem changes the supplied descriptive, cost and threshold fields.
// Unknown keys are ignored; stock_level and barcode can never be set here.
func (l *Ledger) UpdateItem(ctx context.Context, barcode string, fields map[string]any) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, barcode)
		if err != nil {
			return err
		}
		if item == nil {
			return notFound(msgItemNotFound)
		}

		updates, err := buildItemUpdates(item, fields)
		if err != nil {
			return err
		}
		updates["updated_at"] = l.timestamp()

		if err := tx.Model(&models.InventoryItem{}).
			Where("id = ?", item.ID).
			Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update item")
		}
		return nil
	})
	if err != nil {
		l.logRejection("update item", barcode, err)
		return err
	}

	l.log.WithField("barcode", barcode).Info("item updated")
	return nil
}

var textFields = []struct{ key, label string }{
	{"name", "Name"},
	{"brand", "Brand"},
	{"item_type", "Item type"},
	{"unit_size", "Unit size"},
}

func buildItemUpdates(item *models.InventoryItem, fields map[string]any) (map[string]any, error) {
	updates := map[string]any{}

	for _, f := range textFields {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return nil, invalidInput("%s must be a string", f.label)
		}
		updates[f.key] = s
	}

	if raw, ok := fields["attributes"]; ok {
		attrs, ok := raw.(map[string]any)
		if !ok || attrs == nil {
			return nil, invalidInput(msgAttributesObject)
		}
		updates["attributes"] = datatypes.JSONMap(attrs)
	}

	if raw, ok := fields["unit_cost"]; ok {
		cost, ok := coerceFloat(raw)
		if !ok {
			return nil, invalidInput("Unit cost must be numeric")
		}
		updates["unit_cost"] = cost
	}

	minStock, maxStock := item.MinStock, item.MaxStock
	_, hasMin := fields["min_stock"]
	_, hasMax := fields["max_stock"]
	if hasMin {
		n, ok := coerceInt(fields["min_stock"])
		if !ok {
			return nil, invalidInput("Minimum stock must be integer")
		}
		minStock = n
		updates["min_stock"] = n
	}
	if hasMax {
		n, ok := coerceInt(fields["max_stock"])
		if !ok {
			return nil, invalidInput("Maximum stock must be integer")
		}
		maxStock = n
		updates["max_stock"] = n
	}

	if len(updates) == 0 {
		return nil, invalidInput("No valid fields to update")
	}
	if (hasMin || hasMax) && !validThresholds(minStock, maxStock) {
		return nil, invalidInput(msgInvalidThreshold)
	}
	return updates, nil
}

func (l *Ledger) logRejection(op, barcode string, err error) {
	entry := l.log.WithFields(logrus.Fields{"op": op, "barcode": barcode})
	if IsBusiness(err) {
		entry.WithError(err).Debug("rejected")
		return
	}
	entry.WithError(err).Error("store failure")
}
