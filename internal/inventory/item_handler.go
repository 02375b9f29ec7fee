package inventory

import (
	"context"

	"inventory-backend/internal/ledger"
	"inventory-backend/internal/models"
	"inventory-backend/internal/reporting"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Ledger is the write side used by the handlers.
type Ledger interface {
	CreateItem(ctx context.Context, in ledger.NewItem) (*models.InventoryItem, error)
	UpdateItem(ctx context.Context, barcode string, fields map[string]any) error
	AdjustStock(ctx context.Context, barcode string, delta int, reason string) (int, error)
	RecordUsage(ctx context.Context, u ledger.Usage) (float64, error)
}

// Reports is the read side used by the handlers.
type Reports interface {
	ListItems(ctx context.Context) ([]reporting.ItemView, error)
	Dashboard(ctx context.Context) (*reporting.Dashboard, error)
	ShoppingList(ctx context.Context) ([]reporting.ShoppingEntry, error)
	Activity(ctx context.Context) ([]reporting.Movement, error)
	ValuationWorkbook(ctx context.Context) (*excelize.File, error)
}

type CreateItemRequest struct {
	Barcode    *string `json:"barcode" validate:"required"`
	Name       *string `json:"name" validate:"required"`
	Brand      *string `json:"brand" validate:"required"`
	ItemType   *string `json:"item_type" validate:"required"`
	Attributes any     `json:"attributes" validate:"required"`
	UnitSize   *string `json:"unit_size" validate:"required"`
	TotalCost  any     `json:"total_cost" validate:"required"`
	StockLevel any     `json:"stock_level" validate:"required"`
	MinStock   any     `json:"min_stock" validate:"required"`
	MaxStock   any     `json:"max_stock" validate:"required"`
}

type ItemListResponse struct {
	Items []reporting.ItemView `json:"items"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// GET /api/items
func ListItemsHandler(reports Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := reports.ListItems(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(ItemListResponse{Items: items})
	}
}

// POST /api/items
func CreateItemHandler(l Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := decodeBody(c, &body); err != nil {
			return err
		}
		if err := requireFields(&body); err != nil {
			return err
		}

		stock, okStock := ledger.CoerceInt(body.StockLevel)
		minStock, okMin := ledger.CoerceInt(body.MinStock)
		maxStock, okMax := ledger.CoerceInt(body.MaxStock)
		totalCost, okCost := ledger.CoerceFloat(body.TotalCost)
		if !okStock || !okMin || !okMax || !okCost {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid numeric values provided")
		}

		attrs, _ := body.Attributes.(map[string]any)

		_, err := l.CreateItem(c.UserContext(), ledger.NewItem{
			Barcode:    *body.Barcode,
			Name:       *body.Name,
			Brand:      *body.Brand,
			ItemType:   *body.ItemType,
			Attributes: attrs,
			UnitSize:   *body.UnitSize,
			TotalCost:  totalCost,
			StockLevel: stock,
			MinStock:   minStock,
			MaxStock:   maxStock,
		})
		if err != nil {
			return ledgerError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(MessageResponse{Message: "Item created successfully"})
	}
}

// PUT /api/items
// Body carries the barcode plus any subset of the editable fields.
func UpdateItemHandler(l Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]any
		if err := decodeBody(c, &body); err != nil {
			return err
		}

		raw, ok := body["barcode"]
		if !ok || raw == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing fields: barcode")
		}
		barcode, ok := raw.(string)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Barcode must be a string")
		}
		delete(body, "barcode")

		if err := l.UpdateItem(c.UserContext(), barcode, body); err != nil {
			return ledgerError(err)
		}
		return c.JSON(MessageResponse{Message: "Item updated"})
	}
}

// GET /api/items/export
func ExportItemsHandler(reports Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wb, err := reports.ValuationWorkbook(c.UserContext())
		if err != nil {
			return err
		}
		defer wb.Close()

		buf, err := wb.WriteToBuffer()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory-valuation.xlsx"`)
		return c.Send(buf.Bytes())
	}
}
