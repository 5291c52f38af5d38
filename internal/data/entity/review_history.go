package entity

import "time"

// ReviewHistory is one snapshot of a logical review. Rows sharing a
// ReviewID form the edit history of a single review; the row with the
// greatest CreatedAt is the current version, earlier rows are retained
// for audit and never deleted. Tone and Sentiment are the only fields
// mutated in place (lazily, by the enrichment step).
type ReviewHistory struct {
	ID         int64     `db:"id"`
	Text       *string   `db:"text"`
	Stars      int       `db:"stars"`
	ReviewID   string    `db:"review_id"`
	Tone       *string   `db:"tone"`
	Sentiment  *string   `db:"sentiment"`
	CategoryID int64     `db:"category_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Enriched reports whether both labels are already populated.
func (r *ReviewHistory) Enriched() bool {
	return r.Tone != nil && r.Sentiment != nil
}

// CategoryTrend is the aggregate row produced by the trend query:
// per-category stats computed over current review versions only.
type CategoryTrend struct {
	CategoryID   int64   `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	AverageStar  float64 `db:"average_star"`
	TotalReviews int64   `db:"total_reviews"`
}
