package routes

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/txengine/internal/ledger"
)

type accountResponse struct {
	Client    uint32 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

func toResponse(acct *ledger.Account) accountResponse {
	return accountResponse{
		Client:    acct.Client,
		Available: acct.Available.StringFixed(4),
		Held:      acct.Held.StringFixed(4),
		Total:     acct.Total().StringFixed(4),
		Locked:    acct.Locked,
	}
}

// RegisterAccountRoutes exposes the finished run's snapshot read-only.
func RegisterAccountRoutes(app *fiber.App, d Deps) {
	app.Get("/accounts", func(c *fiber.Ctx) error {
		clients := make([]uint32, 0, len(d.Accounts))
		for client := range d.Accounts {
			clients = append(clients, client)
		}
		sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })

		out := make([]accountResponse, 0, len(clients))
		for _, client := range clients {
			out = append(out, toResponse(d.Accounts[client]))
		}
		return c.Status(http.StatusOK).JSON(out)
	})

	app.Get("/accounts/:client", func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("client"), 10, 32)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "client must be an unsigned 32-bit integer")
		}
		acct, ok := d.Accounts[uint32(id)]
		if !ok {
			return fiber.NewError(http.StatusNotFound, "unknown client")
		}
		return c.Status(http.StatusOK).JSON(toResponse(acct))
	})
}
