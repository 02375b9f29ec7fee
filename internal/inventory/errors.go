package inventory

import (
	"inventory-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// ledgerError turns a business rejection into the matching HTTP status.
// Anything else is returned untouched for the app's error handler.
func ledgerError(err error) error {
	var le *ledger.Error
	if !errors.As(err, &le) {
		return err
	}
	switch {
	case errors.Is(le, ledger.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, le.Message)
	case errors.Is(le, ledger.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, le.Message)
	default:
		return fiber.NewError(fiber.StatusBadRequest, le.Message)
	}
}
