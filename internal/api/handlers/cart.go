package handlers

import (
	"net/http"

	"github.com/glamzz/glamzz-store/internal/api/middleware"
	"github.com/glamzz/glamzz-store/internal/models"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/utils"
	"github.com/glamzz/glamzz-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.cartService.Cart())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(&req)
		if err != nil {
			logger.Warn("Add to cart rejected", "productId", req.ProductID, "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", "productId", req.ProductID, "size", req.Size)
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.UpdateQuantity(&req))
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RemoveItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.RemoveItem(&req))
	}
}
