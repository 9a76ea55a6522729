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

type OrderHandler struct {
	orderService *service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Checkout converts the whole cart into one order.
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		order, err := h.orderService.Checkout(r.Context())
		if err != nil {
			logger.Warn("Checkout rejected", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", "orderId", order.ID, "total", order.Total.String())
		response.Success(w, http.StatusCreated, models.OrderResponse{Order: order})
	}
}

// BuyNow places a single-item order straight from the product detail view.
func (h *OrderHandler) BuyNow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.BuyNowRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.BuyNow(r.Context(), &req)
		if err != nil {
			logger.Warn("Buy-now rejected", "productId", req.ProductID, "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Buy-now order placed", "orderId", order.ID, "total", order.Total.String())
		response.Success(w, http.StatusCreated, models.OrderResponse{Order: order})
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders := h.orderService.ListOrders()

		response.Success(w, http.StatusOK, models.OrderHistoryResponse{
			Orders: orders,
			Total:  len(orders),
		})
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		order, err := h.orderService.GetOrder(r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.OrderResponse{Order: order})
	}
}

// AdvanceStatus moves an order one step along its forward-only lifecycle.
func (h *OrderHandler) AdvanceStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		order, err := h.orderService.AdvanceStatus(r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Order status advanced", "orderId", order.ID, "status", string(order.Status))
		response.Success(w, http.StatusOK, models.OrderResponse{Order: order})
	}
}
