package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/product-compare/internal/models"
	"github.com/ahmednasr/product-compare/internal/service"
)

// ProductHandler exposes the catalog and the subset currently in scope.
type ProductHandler struct {
	svc service.ChatService
}

func NewProductHandler(svc service.ChatService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Register mounts GET /products on the given router group.
func (h *ProductHandler) Register(r fiber.Router) {
	r.Get("/products", h.list)
}

func (h *ProductHandler) list(c *fiber.Ctx) error {
	return c.JSON(models.ProductsResponse{
		Available: nonNil(h.svc.AvailableProducts()),
		Catalog:   nonNil(h.svc.Catalog()),
	})
}

func nonNil(p []models.Product) []models.Product {
	if p == nil {
		return []models.Product{}
	}
	return p
}
