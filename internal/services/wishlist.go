package service

import (
	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
)

type WishlistService struct {
	wishlist *repository.WishlistStore
	catalog  *catalog.Catalog
}

func NewWishlistService(wishlist *repository.WishlistStore, catalog *catalog.Catalog) *WishlistService {
	return &WishlistService{wishlist: wishlist, catalog: catalog}
}

// Toggle flips wishlist membership, returning the new state.
func (s *WishlistService) Toggle(productID string) (bool, error) {

	if _, ok := s.catalog.ByID(productID); !ok {
		return false, errors.NotFoundError("Product not found")
	}

	return s.wishlist.Toggle(productID), nil
}

func (s *WishlistService) List() []models.Product {

	var out []models.Product

	for _, id := range s.wishlist.List() {
		if product, ok := s.catalog.ByID(id); ok {
			out = append(out, *product)
		}
	}

	return out
}
