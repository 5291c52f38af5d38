package usecase

import (
	"context"
	"errors"
	"fmt"

	"review-insights/internal/data/entity"
	"review-insights/internal/data/repository"
	"review-insights/internal/enrichment"

	"go.uber.org/zap"
)

// ErrRowNotFound reports that the review row no longer exists, e.g. it
// was removed between the page query and the enrichment step.
var ErrRowNotFound = errors.New("review row not found")

// EnrichmentService is the explicit enrichment step, keyed by review row
// id and safe to invoke any number of times: rows that already carry
// both labels are returned untouched without an external call.
type EnrichmentService interface {
	EnrichRow(ctx context.Context, rowID int64) (*entity.ReviewHistory, error)
}

type enrichmentService struct {
	repo     *repository.Repository
	analyzer enrichment.Analyzer
	log      *zap.Logger
}

func NewEnrichmentService(repo *repository.Repository, analyzer enrichment.Analyzer, log *zap.Logger) EnrichmentService {
	return &enrichmentService{
		repo:     repo,
		analyzer: analyzer,
		log:      log.With(zap.String("service", "enrichment")),
	}
}

// EnrichRow derives and persists tone and sentiment for one row. The
// write-back is its own implicit transaction; a crash between rows of a
// page leaves partial enrichment, which a later read repairs.
func (s *enrichmentService) EnrichRow(ctx context.Context, rowID int64) (*entity.ReviewHistory, error) {
	review, err := s.repo.ReviewHistory.FindByID(ctx, rowID)
	if err != nil {
		return nil, fmt.Errorf("load review for enrichment: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review history %d: %w", rowID, ErrRowNotFound)
	}

	if review.Enriched() {
		return review, nil
	}

	text := ""
	if review.Text != nil {
		text = *review.Text
	}

	result, err := s.analyzer.Analyze(ctx, text, review.Stars)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReviewHistory.UpdateEnrichment(ctx, rowID, result.Tone, result.Sentiment); err != nil {
		return nil, err
	}

	review.Tone = &result.Tone
	review.Sentiment = &result.Sentiment

	s.log.Debug("Review enriched",
		zap.Int64("row_id", rowID),
		zap.String("tone", result.Tone),
		zap.String("sentiment", result.Sentiment),
	)

	return review, nil
}
