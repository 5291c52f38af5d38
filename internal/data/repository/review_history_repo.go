package repository

import (
	"context"
	"fmt"
	"time"

	"review-insights/internal/data/entity"
	"review-insights/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewHistoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.ReviewHistory, error)
	FindCurrentByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.ReviewHistory, error)
	UpdateEnrichment(ctx context.Context, id int64, tone, sentiment string) error
}

type reviewHistoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewHistoryRepository(db database.PgxIface, log *zap.Logger) ReviewHistoryRepository {
	return &reviewHistoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_history")),
	}
}

const reviewHistoryColumns = `id, text, stars, review_id, tone, sentiment, category_id, created_at, updated_at`

func scanReviewHistory(row pgx.Row) (*entity.ReviewHistory, error) {
	var review entity.ReviewHistory
	err := row.Scan(
		&review.ID,
		&review.Text,
		&review.Stars,
		&review.ReviewID,
		&review.Tone,
		&review.Sentiment,
		&review.CategoryID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewHistoryRepository) FindByID(ctx context.Context, id int64) (*entity.ReviewHistory, error) {
	query := `
		SELECT ` + reviewHistoryColumns + `
		FROM review_history
		WHERE id = $1
	`

	review, err := scanReviewHistory(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review history by ID",
			zap.Error(err),
			zap.Int64("row_id", id),
		)
		return nil, fmt.Errorf("find review history by ID %d: %w", id, err)
	}

	return review, nil
}

// FindCurrentByCategory returns current review versions in a category,
// newest first. A version is current when its created_at is the max among
// rows sharing its review_id within the category.
func (r *reviewHistoryRepository) FindCurrentByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*entity.ReviewHistory, error) {
	query := `
		SELECT rh.id, rh.text, rh.stars, rh.review_id, rh.tone, rh.sentiment,
		       rh.category_id, rh.created_at, rh.updated_at
		FROM review_history rh
		JOIN (
			SELECT review_id, MAX(created_at) AS latest
			FROM review_history
			WHERE category_id = $1
			GROUP BY review_id
		) cur ON rh.review_id = cur.review_id AND rh.created_at = cur.latest
		WHERE rh.category_id = $1
		ORDER BY rh.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find current reviews by category",
			zap.Error(err),
			zap.Int64("category_id", categoryID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find current reviews by category %d: %w", categoryID, err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewHistory
	for rows.Next() {
		review, err := scanReviewHistory(rows)
		if err != nil {
			r.log.Error("Failed to scan review history row", zap.Error(err))
			return nil, fmt.Errorf("scan review history row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review history rows: %w", err)
	}

	return reviews, nil
}

// UpdateEnrichment persists lazily derived tone and sentiment labels.
// updated_at is refreshed; created_at is untouched so the row keeps its
// place in the version history.
func (r *reviewHistoryRepository) UpdateEnrichment(ctx context.Context, id int64, tone, sentiment string) error {
	query := `
		UPDATE review_history
		SET tone = $2, sentiment = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, tone, sentiment, time.Now())
	if err != nil {
		r.log.Error("Failed to update review enrichment",
			zap.Error(err),
			zap.Int64("row_id", id),
		)
		return fmt.Errorf("update enrichment for review history %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review history %d not found", id)
	}

	return nil
}
