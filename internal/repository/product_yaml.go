package repository

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ahmednasr/product-compare/internal/models"
)

// YAMLProducts reads the catalog from a YAML file of the form
//
//	products:
//	  - id: phone1
//	    name: SuperPhone X
//	    ...
type YAMLProducts struct {
	path string
}

type yamlCatalog struct {
	Products []models.Product `yaml:"products"`
}

func NewYAMLProducts(path string) *YAMLProducts {
	return &YAMLProducts{path: path}
}

// ListProducts re-reads the file on every call.
func (r *YAMLProducts) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog file %s", r.path)
	}
	var doc yamlCatalog
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "parse catalog file %s", r.path)
	}
	return doc.Products, nil
}
