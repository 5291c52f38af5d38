package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"review-insights/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Integration coverage for the current-row semantics against a real
// Postgres. Runs only when TEST_DATABASE_URL points at a disposable
// database; the tables are truncated on every run.

func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.CreateSchema(ctx, pool); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE review_history, access_log, category RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return pool
}

func seedCategory(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO category (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return id
}

func seedSnapshot(t *testing.T, pool *pgxpool.Pool, categoryID int64, reviewID string, stars int, createdAt time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_history (text, stars, review_id, category_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		"snapshot of "+reviewID, stars, reviewID, categoryID, createdAt)
	if err != nil {
		t.Fatalf("seed snapshot %s: %v", reviewID, err)
	}
}

func TestCurrentRowSemanticsPostgres(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewRepository(pool, zap.NewNop())
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)

	laptops := seedCategory(t, pool, "Laptops")
	phones := seedCategory(t, pool, "Phones")
	seedCategory(t, pool, "Tablets") // no reviews, must not appear

	// r1 has a superseded snapshot (stars=3) and a current one (stars=5).
	seedSnapshot(t, pool, laptops, "r1", 3, base)
	seedSnapshot(t, pool, laptops, "r1", 5, base.Add(10*time.Minute))
	seedSnapshot(t, pool, laptops, "r2", 4, base.Add(20*time.Minute))
	seedSnapshot(t, pool, phones, "r3", 2, base.Add(5*time.Minute))

	trends, err := repo.Category.TopRatedCategories(ctx, 5)
	if err != nil {
		t.Fatalf("TopRatedCategories: %v", err)
	}

	if len(trends) != 2 {
		t.Fatalf("trend count = %d, want 2 (zero-review category must be absent)", len(trends))
	}
	// Laptops: (5+4)/2 over current rows only. The superseded stars=3
	// snapshot would drag this to 4.0 and the count to 3.
	if trends[0].CategoryID != laptops || trends[0].AverageStar != 4.5 || trends[0].TotalReviews != 2 {
		t.Errorf("first trend = %+v, want laptops avg 4.5 over 2 reviews", trends[0])
	}
	if trends[1].CategoryID != phones || trends[1].AverageStar != 2.0 {
		t.Errorf("second trend = %+v, want phones avg 2.0", trends[1])
	}

	reviews, err := repo.ReviewHistory.FindCurrentByCategory(ctx, laptops, 15, 0)
	if err != nil {
		t.Fatalf("FindCurrentByCategory: %v", err)
	}

	if len(reviews) != 2 {
		t.Fatalf("listing count = %d, want 2 current rows", len(reviews))
	}
	// Newest first: r2, then r1's current snapshot.
	if reviews[0].ReviewID != "r2" || reviews[0].Stars != 4 {
		t.Errorf("first row = %+v, want r2 stars 4", reviews[0])
	}
	if reviews[1].ReviewID != "r1" || reviews[1].Stars != 5 {
		t.Errorf("second row = %+v, want current r1 stars 5 (not the stars=3 snapshot)", reviews[1])
	}

	// Offset skips whole rows of the ordered current set.
	page2, err := repo.ReviewHistory.FindCurrentByCategory(ctx, laptops, 1, 1)
	if err != nil {
		t.Fatalf("FindCurrentByCategory offset: %v", err)
	}
	if len(page2) != 1 || page2[0].ReviewID != "r1" {
		t.Errorf("offset page = %+v, want the single r1 row", page2)
	}
}

func TestUpdateEnrichmentPostgres(t *testing.T) {
	pool := newIntegrationPool(t)
	repo := NewRepository(pool, zap.NewNop())
	ctx := context.Background()

	cat := seedCategory(t, pool, "Laptops")
	seedSnapshot(t, pool, cat, "r1", 5, time.Now().UTC())

	rows, err := repo.ReviewHistory.FindCurrentByCategory(ctx, cat, 15, 0)
	if err != nil || len(rows) != 1 {
		t.Fatalf("seeded row not found: %v (%d rows)", err, len(rows))
	}
	row := rows[0]

	if err := repo.ReviewHistory.UpdateEnrichment(ctx, row.ID, "warm", "positive"); err != nil {
		t.Fatalf("UpdateEnrichment: %v", err)
	}

	got, err := repo.ReviewHistory.FindByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Tone == nil || *got.Tone != "warm" || got.Sentiment == nil || *got.Sentiment != "positive" {
		t.Errorf("labels = (%v, %v), want (warm, positive)", got.Tone, got.Sentiment)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("updated_at not refreshed: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
}
