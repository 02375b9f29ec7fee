package inventory

import (
	"inventory-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

type AdjustStockRequest struct {
	Barcode *string `json:"barcode" validate:"required"`
	Delta   any     `json:"delta" validate:"required"`
	Reason  *string `json:"reason" validate:"required"`
}

type AdjustStockResponse struct {
	Message  string `json:"message"`
	NewStock int    `json:"new_stock"`
}

type UsageRequest struct {
	ClientName  *string `json:"client_name" validate:"required"`
	UsageDate   *string `json:"usage_date" validate:"required"`
	BeforeState *string `json:"before_state" validate:"required"`
	AfterState  *string `json:"after_state" validate:"required"`
	Items       any     `json:"items" validate:"required"`
}

type UsageResponse struct {
	Message   string  `json:"message"`
	TotalCost float64 `json:"total_cost"`
}

// POST /api/items/adjust
func AdjustStockHandler(l Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustStockRequest
		if err := decodeBody(c, &body); err != nil {
			return err
		}
		missing, err := missingFields(&body)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Missing field: "+missing[0])
		}

		delta, ok := ledger.CoerceInt(body.Delta)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Delta must be an integer")
		}

		newStock, err := l.AdjustStock(c.UserContext(), *body.Barcode, delta, *body.Reason)
		if err != nil {
			return ledgerError(err)
		}
		return c.JSON(AdjustStockResponse{Message: "Stock adjusted", NewStock: newStock})
	}
}

// POST /api/usage
func RecordUsageHandler(l Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UsageRequest
		if err := decodeBody(c, &body); err != nil {
			return err
		}
		if err := requireFields(&body); err != nil {
			return err
		}

		lines, err := usageLines(body.Items)
		if err != nil {
			return err
		}

		total, err := l.RecordUsage(c.UserContext(), ledger.Usage{
			ClientName:  *body.ClientName,
			UsageDate:   *body.UsageDate,
			BeforeState: *body.BeforeState,
			AfterState:  *body.AfterState,
			Lines:       lines,
		})
		if err != nil {
			return ledgerError(err)
		}
		return c.JSON(UsageResponse{Message: "Usage recorded", TotalCost: total})
	}
}

func usageLines(raw any) ([]ledger.UsageLine, error) {
	entries, ok := raw.([]any)
	if !ok || len(entries) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Items must be a non-empty list")
	}

	lines := make([]ledger.UsageLine, 0, len(entries))
	for _, e := range entries {
		entry, _ := e.(map[string]any)
		barcode, hasBarcode := entry["barcode"].(string)
		rawAmount, hasAmount := entry["amount"]
		if !hasBarcode || !hasAmount {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Each usage item must include barcode and amount")
		}
		amount, ok := ledger.CoerceInt(rawAmount)
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Item amount must be an integer")
		}
		lines = append(lines, ledger.UsageLine{Barcode: barcode, Amount: amount})
	}
	return lines, nil
}
