package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ahmednasr/product-compare/internal/models"
)

// ProductMongo provides Mongo-backed persistence for the product catalog.
type ProductMongo struct {
	col *mongo.Collection
}

// NewProductRepository returns a ProductMongo that operates on the named collection.
func NewProductRepository(db *mongo.Database, collection string) *ProductMongo {
	return &ProductMongo{
		col: db.Collection(collection),
	}
}

// ListProducts returns every product ordered by _id.
func (r *ProductMongo) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	log.Debug().Str("collection", r.col.Name()).Int("count", len(products)).Msg("products listed")
	return products, nil
}

// Upsert inserts or replaces the product with the same _id.
func (r *ProductMongo) Upsert(ctx context.Context, p models.Product) error {
	_, err := r.col.ReplaceOne(
		ctx,
		bson.M{"_id": p.ID},
		p,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(err, "upsert product %s", p.ID)
	}
	return nil
}

// SeedIfEmpty writes products when the collection holds no documents yet.
// It reports whether anything was written.
func (r *ProductMongo) SeedIfEmpty(ctx context.Context, products []models.Product) (bool, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, errors.Wrap(err, "count products")
	}
	if n > 0 {
		return false, nil
	}
	for _, p := range products {
		if err := r.Upsert(ctx, p); err != nil {
			return false, err
		}
	}
	log.Info().Str("collection", r.col.Name()).Int("count", len(products)).Msg("seeded product collection")
	return true, nil
}
