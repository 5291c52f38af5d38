package adaptor

import (
	"review-insights/internal/accesslog"
	"review-insights/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, accessLog *accesslog.Queue, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, accessLog, log),
	}
}
