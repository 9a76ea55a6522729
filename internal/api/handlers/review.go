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

type ReviewHandler struct {
	reviewService *service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: validator.New()}
}

func (h *ReviewHandler) AddReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")

		var req models.AddReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.AddReview(productID, &req)
		if err != nil {
			logger.Warn("Review rejected", "productId", productID, "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Review added", "productId", productID, "rating", review.Rating)
		response.Success(w, http.StatusCreated, review)
	}
}

func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		reviews, err := h.reviewService.ListReviews(r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ReviewListResponse{
			Reviews: reviews,
			Total:   len(reviews),
		})
	}
}
