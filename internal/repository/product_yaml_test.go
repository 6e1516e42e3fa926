package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahmednasr/product-compare/internal/catalog"
)

const catalogYAML = `products:
  - id: lap1
    name: AirBook 14
    category: laptop
    price: 1199.99
    features: [14-inch display, 16GB RAM]
    pros: [Light]
    cons: [Few ports]
  - id: tv1
    name: VisionTV 55
    category: tv
    price: 549
`

func TestYAMLProductsListProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	products, err := NewYAMLProducts(path).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "AirBook 14", products[0].Name)
	require.Equal(t, 1199.99, products[0].Price)
	require.Equal(t, []string{"14-inch display", "16GB RAM"}, products[0].Features)
	require.Empty(t, products[1].Pros)
}

func TestYAMLProductsMissingFile(t *testing.T) {
	_, err := NewYAMLProducts(filepath.Join(t.TempDir(), "nope.yaml")).ListProducts(context.Background())
	require.ErrorContains(t, err, "read catalog file")
}

func TestYAMLProductsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: [::"), 0o600))

	_, err := NewYAMLProducts(path).ListProducts(context.Background())
	require.ErrorContains(t, err, "parse catalog file")
}

func TestStaticProducts(t *testing.T) {
	products, err := NewStaticProducts().ListProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, catalog.Sample(), products)
}

func TestExampleCatalogParses(t *testing.T) {
	products, err := NewYAMLProducts(filepath.Join("..", "..", "catalog.example.yaml")).ListProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, catalog.Sample(), products[:2])
	require.Equal(t, "laptop", products[2].Category)
}
