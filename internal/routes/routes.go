package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/congo-pay/txengine/internal/config"
	"github.com/congo-pay/txengine/internal/ledger"
	"github.com/congo-pay/txengine/internal/middleware"
)

// Deps aggregates the shared dependencies required to wire routes. Accounts
// is the terminal snapshot of a finished run; nothing behind these routes
// ever mutates it.
type Deps struct {
	Cfg      config.Config
	Accounts map[uint32]*ledger.Account
	Logger   *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	RegisterHealthRoutes(app, d)
	RegisterAccountRoutes(app, d)

	return nil
}
