package database

import (
	"context"
	"fmt"
)

// Development-mode bootstrap only. Real deployments manage the schema
// out-of-band; review_history.category_id references category without
// cascade rules on purpose.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS category (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS review_history (
		id BIGSERIAL PRIMARY KEY,
		text TEXT,
		stars INTEGER NOT NULL,
		review_id VARCHAR(255) NOT NULL,
		tone VARCHAR(255),
		sentiment VARCHAR(255),
		category_id BIGINT REFERENCES category(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_review_history_review_id ON review_history (review_id)`,
	`CREATE INDEX IF NOT EXISTS idx_review_history_category_id ON review_history (category_id)`,
	`CREATE TABLE IF NOT EXISTS access_log (
		id BIGSERIAL PRIMARY KEY,
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// CreateSchema creates the tables if they do not exist yet.
func CreateSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
