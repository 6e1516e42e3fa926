package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	catalogSource string
	mainDB        *mongo.Client
}

// NewHealthHandler reports catalogSource; mainDB may be nil when no database is used.
func NewHealthHandler(catalogSource string, mainDB *mongo.Client) *HealthHandler {
	return &HealthHandler{
		catalogSource: catalogSource,
		mainDB:        mainDB,
	}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":         "ok",
		"catalog_source": h.catalogSource,
		"dbs": fiber.Map{
			"main": h.checkDB(c.UserContext(), h.mainDB),
		},
	}

	return c.JSON(status)
}

func (h *HealthHandler) checkDB(ctx context.Context, client *mongo.Client) string {
	if client == nil {
		return "not_configured"
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return "error"
	}
	return "connected"
}
