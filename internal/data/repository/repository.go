package repository

import (
	"review-insights/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Category      CategoryRepository
	ReviewHistory ReviewHistoryRepository
	AccessLog     AccessLogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category:      NewCategoryRepository(db, log),
		ReviewHistory: NewReviewHistoryRepository(db, log),
		AccessLog:     NewAccessLogRepository(db, log),
	}
}
