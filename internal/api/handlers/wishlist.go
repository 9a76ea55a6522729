package handlers

import (
	"net/http"

	"github.com/glamzz/glamzz-store/internal/api/middleware"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/utils/response"
)

type WishlistHandler struct {
	wishlistService *service.WishlistService
}

func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")

		wishlisted, err := h.wishlistService.Toggle(productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist toggled", "productId", productID, "wishlisted", wishlisted)
		response.Success(w, http.StatusOK, map[string]bool{"wishlisted": wishlisted})
	}
}

func (h *WishlistHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.wishlistService.List())
	}
}
