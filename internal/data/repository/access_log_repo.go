package repository

import (
	"context"
	"fmt"
	"time"

	"review-insights/internal/data/entity"
	"review-insights/pkg/database"

	"go.uber.org/zap"
)

type AccessLogRepository interface {
	Create(ctx context.Context, text string) error
}

type accessLogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccessLogRepository(db database.PgxIface, log *zap.Logger) AccessLogRepository {
	return &accessLogRepository{
		db:  db,
		log: log.With(zap.String("repository", "access_log")),
	}
}

func (r *accessLogRepository) Create(ctx context.Context, text string) error {
	query := `
		INSERT INTO access_log (text, created_at)
		VALUES ($1, $2)
	`

	entry := entity.AccessLog{Text: text, CreatedAt: time.Now()}

	_, err := r.db.Exec(ctx, query, entry.Text, entry.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create access log",
			zap.Error(err),
			zap.String("text", text),
		)
		return fmt.Errorf("create access log: %w", err)
	}

	return nil
}
