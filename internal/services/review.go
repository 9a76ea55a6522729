package service

import (
	"strings"
	"time"

	"github.com/glamzz/glamzz-store/internal/catalog"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	repository "github.com/glamzz/glamzz-store/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewService struct {
	reviews *repository.ReviewStore
	session *repository.SessionStore
	catalog *catalog.Catalog
	policy  *bluemonday.Policy
}

func NewReviewService(reviews *repository.ReviewStore, session *repository.SessionStore, catalog *catalog.Catalog) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		session: session,
		catalog: catalog,
		// Review comments render as text only, strip all markup.
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *ReviewService) AddReview(productID string, req *models.AddReviewRequest) (*models.Review, error) {

	if s.session.Get() == nil {
		return nil, errors.UnauthorizedError("Please login to write a review")
	}

	if _, ok := s.catalog.ByID(productID); !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.ValidationError("Please select a rating")
	}

	comment := strings.TrimSpace(s.policy.Sanitize(req.Comment))
	if comment == "" {
		return nil, errors.ValidationError("Please enter a comment")
	}

	review := models.Review{
		Rating:  req.Rating,
		Comment: comment,
		Date:    time.Now().Format("02/01/2006"),
	}

	s.reviews.Prepend(productID, review)

	return &review, nil
}

func (s *ReviewService) ListReviews(productID string) ([]models.Review, error) {

	if _, ok := s.catalog.ByID(productID); !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	return s.reviews.List(productID), nil
}
