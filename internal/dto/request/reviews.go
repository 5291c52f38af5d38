package request

// ListReviewsRequest carries the query parameters of the review listing
// endpoint. CategoryID is required; Page is 1-indexed and defaults to 1.
type ListReviewsRequest struct {
	CategoryID int64 `json:"category_id" validate:"required,gt=0"`
	Page       int   `json:"page" validate:"min=1"`
}
