package handlers

import (
	"net/http"

	"github.com/glamzz/glamzz-store/internal/api/middleware"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/utils/response"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := r.URL.Query().Get("category")
		query := r.URL.Query().Get("q")

		resp := h.productService.ListProducts(category, query)

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		resp, err := h.productService.GetProduct(id)
		if err != nil {
			logger.Warn("Product lookup failed", "productId", id)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *ProductHandler) Categories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.productService.Categories())
	}
}
