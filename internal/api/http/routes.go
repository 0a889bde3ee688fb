package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Looker runs a single weather lookup.
type Looker interface {
	Lookup(ctx context.Context, credentials, query map[string]string) weather.Result
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
// credentials holds the static API key passed to every lookup.
func RegisterRoutes(app *fiber.App, service Looker, credentials map[string]string) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		query := map[string]string{
			"city": utils.CopyString(c.Query("city")),
		}

		result := service.Lookup(c.UserContext(), credentials, query)
		return c.Status(statusFor(result)).JSON(result)
	})
}

// statusFor maps a lookup result to the response status code.
func statusFor(result weather.Result) int {
	switch result.Kind() {
	case weather.KindNone:
		return fiber.StatusOK
	case weather.KindMissingCity, weather.KindMissingAPIKey:
		return fiber.StatusBadRequest
	case weather.KindTimeout:
		return fiber.StatusGatewayTimeout
	case weather.KindConnection, weather.KindHTTP, weather.KindParse, weather.KindProvider:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
