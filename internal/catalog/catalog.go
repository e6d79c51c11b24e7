// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/espacenaturae/storefront-backend/internal/config"
	"github.com/espacenaturae/storefront-backend/internal/models"
)

// Catalog holds the product and glossary data sets. Both are loaded once at
// startup and treated as read-only afterwards; the cart core never validates
// them beyond defensive price parsing at add time.
type Catalog struct {
	products []models.Product
	glossary []models.GlossaryItem
	byID     map[string]*models.Product
}

func Load(cfg config.CatalogConfig) (*Catalog, error) {
	var products []models.Product
	if err := readJSON(cfg.ProductsPath, &products); err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	var glossary []models.GlossaryItem
	if err := readJSON(cfg.GlossaryPath, &glossary); err != nil {
		return nil, fmt.Errorf("failed to load glossary: %w", err)
	}

	return New(products, glossary), nil
}

// New builds a catalog from already materialized data sets. Used directly
// by tests and by Load.
func New(products []models.Product, glossary []models.GlossaryItem) *Catalog {
	c := &Catalog{
		products: products,
		glossary: glossary,
		byID:     make(map[string]*models.Product, len(products)),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// Products returns the full catalog in declaration order.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Product returns the catalog entry with the given id.
func (c *Catalog) Product(id string) (*models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Glossary returns all glossary items in file order.
func (c *Catalog) Glossary() []models.GlossaryItem {
	return c.glossary
}
