package repository

import (
	"context"

	"github.com/ahmednasr/product-compare/internal/catalog"
	"github.com/ahmednasr/product-compare/internal/models"
)

// StaticProducts serves the built-in catalog.
type StaticProducts struct{}

func NewStaticProducts() StaticProducts { return StaticProducts{} }

func (StaticProducts) ListProducts(context.Context) ([]models.Product, error) {
	return catalog.Sample(), nil
}
