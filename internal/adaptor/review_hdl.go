package adaptor

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"review-insights/internal/accesslog"
	"review-insights/internal/dto/request"
	"review-insights/internal/usecase"
	"review-insights/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service   usecase.ReviewService
	accessLog *accesslog.Queue
	log       *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, accessLog *accesslog.Queue, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:   service,
		accessLog: accessLog,
		log:       log.With(zap.String("handler", "review")),
	}
}

// GetTrends handles GET /reviews/trends
func (h *ReviewHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.service.GetTrendingCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get trending categories")
		return
	}

	h.accessLog.Publish("GET /reviews/trends")

	utils.ResponseData(w, trends)
}

// ListReviews handles GET /reviews/?category_id=<int>&page=<int=1>
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	categoryIDStr := query.Get("category_id")
	if categoryIDStr == "" {
		utils.ResponseBadRequest(w, "category_id is required", nil)
		return
	}

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "category_id must be an integer", nil)
		return
	}

	req := &request.ListReviewsRequest{
		CategoryID: categoryID,
		Page:       utils.ParseInt(query.Get("page"), 1),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reviews, err := h.service.ListReviews(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	h.accessLog.Publish(fmt.Sprintf("GET /reviews/?category_id=%d", categoryID))

	utils.ResponseData(w, reviews)
}

// handleServiceError maps service errors to HTTP responses
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
