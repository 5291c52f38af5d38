package usecase

import (
	"review-insights/internal/data/repository"
	"review-insights/internal/enrichment"

	"go.uber.org/zap"
)

type Service struct {
	Review     ReviewService
	Enrichment EnrichmentService
}

func NewService(repo *repository.Repository, analyzer enrichment.Analyzer, log *zap.Logger) *Service {
	enrich := NewEnrichmentService(repo, analyzer, log)

	return &Service{
		Review:     NewReviewService(repo, enrich, log),
		Enrichment: enrich,
	}
}
