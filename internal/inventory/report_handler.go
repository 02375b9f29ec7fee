package inventory

import (
	"inventory-backend/internal/reporting"

	"github.com/gofiber/fiber/v2"
)

type ShoppingListResponse struct {
	Items []reporting.ShoppingEntry `json:"items"`
}

type ActivityResponse struct {
	Movements []reporting.Movement `json:"movements"`
}

// GET /api/dashboard
func DashboardHandler(reports Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := reports.Dashboard(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(d)
	}
}

// GET /api/shopping-list
func ShoppingListHandler(reports Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := reports.ShoppingList(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(ShoppingListResponse{Items: entries})
	}
}

// GET /api/activity
func ActivityHandler(reports Reports) fiber.Handler {
	return func(c *fiber.Ctx) error {
		movements, err := reports.Activity(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(ActivityResponse{Movements: movements})
	}
}
