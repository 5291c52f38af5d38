package response

import (
	"time"

	"review-insights/internal/data/entity"
)

type CategoryTrendResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	AverageStar  float64 `json:"average_star"`
	TotalReviews int64   `json:"total_reviews"`
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	Text       *string   `json:"text"`
	Stars      int       `json:"stars"`
	ReviewID   string    `json:"review_id"`
	Tone       *string   `json:"tone"`
	Sentiment  *string   `json:"sentiment"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Helper converters

func CategoryTrendToResponse(trend *entity.CategoryTrend) CategoryTrendResponse {
	return CategoryTrendResponse{
		ID:           trend.CategoryID,
		Name:         trend.Name,
		Description:  trend.Description,
		AverageStar:  trend.AverageStar,
		TotalReviews: trend.TotalReviews,
	}
}

func ReviewToResponse(review *entity.ReviewHistory) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		Text:       review.Text,
		Stars:      review.Stars,
		ReviewID:   review.ReviewID,
		Tone:       review.Tone,
		Sentiment:  review.Sentiment,
		CategoryID: review.CategoryID,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
