package wire

import (
	"review-insights/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /reviews/trends - top categories by average stars (public)
	r.Get("/reviews/trends", reviewHandler.GetTrends)

	// GET /reviews/?category_id=<int>&page=<int> - paginated listing (public)
	r.Get("/reviews/", reviewHandler.ListReviews)
}
