// Package server assembles the fiber application: middleware, API routes,
// health check and the static front end.
package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inventory-backend/internal/config"
	"inventory-backend/internal/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Ledger  inventory.Ledger
	Reports inventory.Reports
	Health  Pinger
	Log     *logrus.Logger
}

func New(cfg *config.Config, deps Deps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	app := fiber.New(fiber.Config{
		AppName:               "inventory-server",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger(log))

	origins := strings.Split(cfg.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,OPTIONS",
	}))

	// preflights are answered by cors; this covers bare OPTIONS requests
	app.Options("/*", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, "GET, POST, PUT, OPTIONS")
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get("/healthz", healthHandler(deps.Health))

	api := app.Group("/api")
	api.Get("/items", inventory.ListItemsHandler(deps.Reports))
	api.Post("/items", inventory.CreateItemHandler(deps.Ledger))
	api.Put("/items", inventory.UpdateItemHandler(deps.Ledger))
	api.Get("/items/export", inventory.ExportItemsHandler(deps.Reports))
	api.Post("/items/adjust", inventory.AdjustStockHandler(deps.Ledger))
	api.Post("/usage", inventory.RecordUsageHandler(deps.Ledger))
	api.Get("/dashboard", inventory.DashboardHandler(deps.Reports))
	api.Get("/shopping-list", inventory.ShoppingListHandler(deps.Reports))
	api.Get("/activity", inventory.ActivityHandler(deps.Reports))
	api.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Unknown endpoint")
	})

	// Static falls through on a miss, so unknown paths land on index.html.
	app.Static("/", cfg.StaticDir, fiber.Static{Index: "index.html"})
	app.Get("/*", indexFallback(cfg.StaticDir))

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Unsupported endpoint")
	})

	return app
}

func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"error": fe.Message,
			})
		}
		log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		}).Error("unexpected error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

// requestLogger renders errors itself so the logged status is the one sent.
func requestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		entry := log.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		})
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			entry.Warn("request failed")
		} else {
			entry.Debug("request")
		}
		return nil
	}
}

func healthHandler(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func indexFallback(staticDir string) fiber.Handler {
	index := filepath.Join(staticDir, "index.html")
	return func(c *fiber.Ctx) error {
		if _, err := os.Stat(index); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Static asset not found")
		}
		return c.SendFile(index)
	}
}
