package repository

import (
	"context"
	"fmt"

	"review-insights/internal/data/entity"
	"review-insights/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// Business queries
	TopRatedCategories(ctx context.Context, limit int) ([]*entity.CategoryTrend, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `
		SELECT id, name, description
		FROM category
		WHERE id = $1
	`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category by ID %d: %w", id, err)
	}

	return &category, nil
}

// TopRatedCategories aggregates average stars and review counts per
// category over current review versions only, ranked by average stars
// descending. A review version is current when its created_at equals the
// max created_at among rows sharing its review_id. Categories without a
// single current review are absent (inner join). No secondary sort key:
// equal averages come back in storage order.
func (r *categoryRepository) TopRatedCategories(ctx context.Context, limit int) ([]*entity.CategoryTrend, error) {
	query := `
		SELECT c.id, c.name, c.description,
		       AVG(rh.stars)::float8 AS average_star,
		       COUNT(rh.id) AS total_reviews
		FROM category c
		JOIN review_history rh ON rh.category_id = c.id
		JOIN (
			SELECT review_id, MAX(created_at) AS latest
			FROM review_history
			GROUP BY review_id
		) cur ON rh.review_id = cur.review_id AND rh.created_at = cur.latest
		GROUP BY c.id, c.name, c.description
		ORDER BY average_star DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query top rated categories",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("query top rated categories: %w", err)
	}
	defer rows.Close()

	var trends []*entity.CategoryTrend
	for rows.Next() {
		var trend entity.CategoryTrend
		err := rows.Scan(
			&trend.CategoryID,
			&trend.Name,
			&trend.Description,
			&trend.AverageStar,
			&trend.TotalReviews,
		)
		if err != nil {
			r.log.Error("Failed to scan category trend row", zap.Error(err))
			return nil, fmt.Errorf("scan category trend row: %w", err)
		}
		trends = append(trends, &trend)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category trend rows: %w", err)
	}

	return trends, nil
}
