package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"review-insights/internal/accesslog"
	"review-insights/internal/dto/request"
	"review-insights/internal/dto/response"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fakeReviewService struct {
	trends  []response.CategoryTrendResponse
	reviews []response.ReviewResponse
	err     error
	gotReq  *request.ListReviewsRequest
}

func (f *fakeReviewService) GetTrendingCategories(ctx context.Context) ([]response.CategoryTrendResponse, error) {
	return f.trends, f.err
}

func (f *fakeReviewService) ListReviews(ctx context.Context, req *request.ListReviewsRequest) ([]response.ReviewResponse, error) {
	f.gotReq = req
	return f.reviews, f.err
}

func newTestHandler(svc *fakeReviewService) *ReviewHandler {
	queue := accesslog.NewQueue(16, zap.NewNop())
	return NewReviewHandler(svc, queue, zap.NewNop())
}

func TestGetTrends(t *testing.T) {
	desc := "everything with a keyboard"
	svc := &fakeReviewService{
		trends: []response.CategoryTrendResponse{
			{ID: 1, Name: "Laptops", Description: &desc, AverageStar: 4.9, TotalReviews: 3},
		},
	}
	handler := newTestHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetTrends(rec, httptest.NewRequest(http.MethodGet, "/reviews/trends", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []response.CategoryTrendResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Laptops" || got[0].AverageStar != 4.9 {
		t.Errorf("body = %+v", got)
	}
}

func TestListReviewsMissingCategoryID(t *testing.T) {
	handler := newTestHandler(&fakeReviewService{})

	rec := httptest.NewRecorder()
	handler.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListReviewsInvalidCategoryID(t *testing.T) {
	handler := newTestHandler(&fakeReviewService{})

	rec := httptest.NewRecorder()
	handler.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews/?category_id=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListReviewsDefaultsPage(t *testing.T) {
	svc := &fakeReviewService{reviews: []response.ReviewResponse{}}
	handler := newTestHandler(svc)

	rec := httptest.NewRecorder()
	handler.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews/?category_id=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotReq.CategoryID != 3 || svc.gotReq.Page != 1 {
		t.Errorf("request = %+v, want category 3 page 1", svc.gotReq)
	}
}

func TestListReviewsEmptyCategoryIsOK(t *testing.T) {
	svc := &fakeReviewService{reviews: []response.ReviewResponse{}}
	handler := newTestHandler(svc)

	rec := httptest.NewRecorder()
	handler.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews/?category_id=999&page=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty category", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestListReviewsServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", errors.New("validation failed: CategoryID: This field is required"), http.StatusBadRequest},
		{"storage", errors.New("list reviews: connection lost"), http.StatusInternalServerError},
		// A row deleted mid-request must not surface as a client-facing 404.
		{"row vanished", errors.New("enrich review 5: review history 5: review row not found"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&fakeReviewService{err: tt.err})

			rec := httptest.NewRecorder()
			handler.ListReviews(rec, httptest.NewRequest(http.MethodGet, "/reviews/?category_id=1", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
