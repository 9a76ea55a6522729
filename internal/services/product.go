package service

import (
	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
)

// ProductService is the read side of the catalog, with each product resolved
// against the enrichment map.
type ProductService struct {
	catalog    *catalog.Catalog
	enrichment *EnrichmentService
}

func NewProductService(catalog *catalog.Catalog, enrichment *EnrichmentService) *ProductService {
	return &ProductService{catalog: catalog, enrichment: enrichment}
}

func (s *ProductService) resolve(product models.Product) models.ProductResponse {

	display, generating := s.enrichment.DisplayImage(&product)

	return models.ProductResponse{
		Product:      &product,
		DisplayImage: display,
		Generating:   generating,
	}
}

func (s *ProductService) GetProduct(id string) (*models.ProductResponse, error) {

	product, ok := s.catalog.ByID(id)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	resolved := s.resolve(*product)

	return &resolved, nil
}

// ListProducts filters by category and a case-insensitive substring of the
// name.
func (s *ProductService) ListProducts(category, query string) *models.ProductListResponse {

	filtered := s.catalog.Filter(category, query)

	products := make([]models.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		products = append(products, s.resolve(p))
	}

	return &models.ProductListResponse{
		Products: products,
		Total:    len(products),
	}
}

func (s *ProductService) Categories() []string {
	return s.catalog.Categories()
}
