package usecase

import (
	"context"
	"errors"
	"testing"

	"review-insights/internal/data/entity"
	"review-insights/internal/data/repository"
	"review-insights/internal/enrichment"

	"go.uber.org/zap"
)

func newTestEnrichmentService(rev *fakeReviewHistoryRepo, analyzer *fakeAnalyzer) EnrichmentService {
	repo := &repository.Repository{ReviewHistory: rev}
	return NewEnrichmentService(repo, analyzer, zap.NewNop())
}

func TestEnrichRowPersistsLabels(t *testing.T) {
	rev := &fakeReviewHistoryRepo{
		rows: []*entity.ReviewHistory{reviewRow(7, 1, nil, nil)},
	}
	analyzer := &fakeAnalyzer{result: &enrichment.Result{Tone: "bitter", Sentiment: "negative"}}
	svc := newTestEnrichmentService(rev, analyzer)

	review, err := svc.EnrichRow(context.Background(), 7)
	if err != nil {
		t.Fatalf("EnrichRow returned error: %v", err)
	}

	if review.Tone == nil || *review.Tone != "bitter" {
		t.Errorf("tone = %v, want bitter", review.Tone)
	}
	if got := rev.updates[7]; got.sentiment != "negative" {
		t.Errorf("persisted sentiment = %q, want negative", got.sentiment)
	}
	if analyzer.calls != 1 {
		t.Errorf("analyzer calls = %d, want 1", analyzer.calls)
	}
}

func TestEnrichRowIdempotent(t *testing.T) {
	rev := &fakeReviewHistoryRepo{
		rows: []*entity.ReviewHistory{reviewRow(3, 5, strPtr("warm"), strPtr("positive"))},
	}
	analyzer := &fakeAnalyzer{}
	svc := newTestEnrichmentService(rev, analyzer)

	for i := 0; i < 3; i++ {
		review, err := svc.EnrichRow(context.Background(), 3)
		if err != nil {
			t.Fatalf("EnrichRow returned error: %v", err)
		}
		if *review.Tone != "warm" || *review.Sentiment != "positive" {
			t.Errorf("labels changed on pass %d", i)
		}
	}

	if analyzer.calls != 0 {
		t.Errorf("analyzer calls = %d, want 0 for enriched row", analyzer.calls)
	}
}

func TestEnrichRowNotFound(t *testing.T) {
	svc := newTestEnrichmentService(&fakeReviewHistoryRepo{}, &fakeAnalyzer{})

	_, err := svc.EnrichRow(context.Background(), 99)
	if err == nil {
		t.Fatal("expected not found error")
	}
}

func TestEnrichRowAnalyzerErrorPropagates(t *testing.T) {
	rev := &fakeReviewHistoryRepo{
		rows: []*entity.ReviewHistory{reviewRow(1, 2, nil, nil)},
	}
	wantErr := &enrichment.Error{Op: "parse", Err: errors.New("expected two lines")}
	svc := newTestEnrichmentService(rev, &fakeAnalyzer{err: wantErr})

	_, err := svc.EnrichRow(context.Background(), 1)

	var enrichErr *enrichment.Error
	if !errors.As(err, &enrichErr) {
		t.Fatalf("error type = %T, want *enrichment.Error", err)
	}
	if len(rev.updates) != 0 {
		t.Errorf("nothing should be persisted on failure, got %v", rev.updates)
	}
}

func TestEnrichRowUpdateErrorPropagates(t *testing.T) {
	rev := &fakeReviewHistoryRepo{
		rows:      []*entity.ReviewHistory{reviewRow(1, 2, nil, nil)},
		updateErr: errors.New("constraint violation"),
	}
	analyzer := &fakeAnalyzer{result: &enrichment.Result{Tone: "flat", Sentiment: "neutral"}}
	svc := newTestEnrichmentService(rev, analyzer)

	_, err := svc.EnrichRow(context.Background(), 1)
	if err == nil {
		t.Fatal("expected update error to propagate")
	}

	var enrichErr *enrichment.Error
	if errors.As(err, &enrichErr) {
		t.Errorf("storage failure must not be classified as enrichment error")
	}
}
