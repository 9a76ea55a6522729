package service

import (
	"fmt"

	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/shopspring/decimal"
)

type CartService struct {
	store   *repository.CartStore
	catalog *catalog.Catalog
}

func NewCartService(store *repository.CartStore, catalog *catalog.Catalog) *CartService {
	return &CartService{store: store, catalog: catalog}
}

// CartTotal is the pure derivation Σ unit price × quantity. It is recomputed
// from the lines on every read, never cached.
func CartTotal(items []models.CartItem) decimal.Decimal {

	total := decimal.Zero

	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

func (s *CartService) Cart() *models.Cart {

	items := s.store.Items()

	return &models.Cart{
		Items: items,
		Total: CartTotal(items),
	}
}

// AddItem inserts a new (product, size) line with quantity 1, or increments
// the existing line. A missing or unoffered size is a validation error and
// leaves the cart untouched.
func (s *CartService) AddItem(req *models.AddItemRequest) (*models.Cart, error) {

	product, ok := s.catalog.ByID(req.ProductID)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	if req.Size == "" {
		return nil, errors.ValidationError("Please select a size first")
	}

	if !product.HasSize(req.Size) {
		return nil, errors.ValidationError(fmt.Sprintf("Size %q is not available for %s", req.Size, product.Name))
	}

	s.store.Upsert(models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Size:      req.Size,
		UnitPrice: product.Price,
	})

	return s.Cart(), nil
}

// RemoveItem deletes the matching line; removing an absent line is a no-op.
func (s *CartService) RemoveItem(req *models.RemoveItemRequest) *models.Cart {

	s.store.Remove(req.ProductID, req.Size)

	return s.Cart()
}

// UpdateQuantity adjusts the line's quantity by the given delta, clamped to a
// minimum of 1. An absent line is a no-op.
func (s *CartService) UpdateQuantity(req *models.UpdateQuantityRequest) *models.Cart {

	s.store.Adjust(req.ProductID, req.Size, req.Delta)

	return s.Cart()
}
