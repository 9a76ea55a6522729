// Package catalog holds the fixed, preloaded list of purchasable products.
// Prices may be authored as JSON numbers or strings; decimal unmarshalling
// coerces them exactly once, here, so arithmetic elsewhere never sees a
// string-typed price.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/glamzz/glamzz-store/internal/models"
)

//go:embed products.json
var productsJSON []byte

type Catalog struct {
	products []models.Product
	byID     map[string]*models.Product
}

func Load() (*Catalog, error) {

	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	c := &Catalog{
		products: products,
		byID:     make(map[string]*models.Product, len(products)),
	}

	for i := range c.products {
		p := &c.products[i]
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id in catalog: %s", p.ID)
		}
		c.byID[p.ID] = p
	}

	return c, nil
}

func (c *Catalog) Size() int {
	return len(c.products)
}

func (c *Catalog) ByID(id string) (*models.Product, bool) {
	p, ok := c.byID[id]

	return p, ok
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)

	return out
}

// Filter narrows the catalog by category ("All" or empty passes everything)
// and a case-insensitive substring match on the product name. No relevance
// ranking, catalog order is preserved.
func (c *Catalog) Filter(category, query string) []models.Product {

	query = strings.ToLower(query)

	var out []models.Product

	for _, p := range c.products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Categories returns "All" followed by the distinct categories in catalog
// order.
func (c *Catalog) Categories() []string {

	categories := []string{"All"}
	seen := make(map[string]bool)

	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return categories
}
