package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ahmednasr/product-compare/internal/models"
)

// ---- Repository layer contracts -------------------------------------------

// ProductRepository supplies the comparison catalog.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// LoadCatalog reads the catalog once at startup.
func LoadCatalog(ctx context.Context, repo ProductRepository) ([]models.Product, error) {
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load product catalog")
	}
	if len(products) == 0 {
		log.Warn().Msg("product catalog is empty")
	}
	log.Info().Int("products", len(products)).Msg("product catalog loaded")
	return products, nil
}
