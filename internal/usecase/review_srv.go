package usecase

import (
	"context"
	"errors"
	"fmt"

	"review-insights/internal/data/repository"
	"review-insights/internal/dto/request"
	"review-insights/internal/dto/response"
	"review-insights/internal/enrichment"
	"review-insights/pkg/utils"

	"go.uber.org/zap"
)

const (
	// trendLimit caps the trending categories report.
	trendLimit = 5
	// pageSize is the fixed page length of the review listing.
	pageSize = 15
)

type ReviewService interface {
	GetTrendingCategories(ctx context.Context) ([]response.CategoryTrendResponse, error)
	ListReviews(ctx context.Context, req *request.ListReviewsRequest) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo   *repository.Repository
	enrich EnrichmentService
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, enrich EnrichmentService, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		enrich: enrich,
		log:    log.With(zap.String("service", "review")),
	}
}

// GetTrendingCategories returns the top categories by average stars over
// current review versions. Categories without current reviews are
// absent.
func (s *reviewService) GetTrendingCategories(ctx context.Context) ([]response.CategoryTrendResponse, error) {
	trends, err := s.repo.Category.TopRatedCategories(ctx, trendLimit)
	if err != nil {
		s.log.Error("Failed to get trending categories", zap.Error(err))
		return nil, fmt.Errorf("get trending categories: %w", err)
	}

	results := make([]response.CategoryTrendResponse, 0, len(trends))
	for _, trend := range trends {
		results = append(results, response.CategoryTrendToResponse(trend))
	}

	s.log.Info("Trending categories retrieved", zap.Int("count", len(results)))

	return results, nil
}

// ListReviews returns one page of current review versions in a category,
// newest first, enriching rows that still miss tone or sentiment. An
// enrichment failure degrades to returning the row unenriched; the page
// never fails because the external service did.
func (s *reviewService) ListReviews(ctx context.Context, req *request.ListReviewsRequest) ([]response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List reviews validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	offset := utils.CalculateOffset(req.Page, pageSize)

	reviews, err := s.repo.ReviewHistory.FindCurrentByCategory(ctx, req.CategoryID, pageSize, offset)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("category_id", req.CategoryID),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	results := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		if !review.Enriched() {
			enriched, err := s.enrich.EnrichRow(ctx, review.ID)
			switch {
			case err == nil:
				review = enriched
			case isEnrichmentError(err):
				s.log.Warn("Enrichment skipped",
					zap.Error(err),
					zap.Int64("row_id", review.ID),
				)
			case errors.Is(err, ErrRowNotFound):
				// Row removed between the page query and the
				// enrichment step; return it as read.
				s.log.Warn("Review row vanished during enrichment",
					zap.Int64("row_id", review.ID),
				)
			default:
				return nil, fmt.Errorf("enrich review %d: %w", review.ID, err)
			}
		}
		results = append(results, response.ReviewToResponse(review))
	}

	s.log.Info("Reviews listed",
		zap.Int64("category_id", req.CategoryID),
		zap.Int("page", req.Page),
		zap.Int("count", len(results)),
	)

	return results, nil
}

func isEnrichmentError(err error) bool {
	var enrichErr *enrichment.Error
	return errors.As(err, &enrichErr)
}
