package response_models

import "time"

type ReviewItem struct {
	ID        string        `json:"id"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	Author    PublicProfile `json:"author"`
	IsOwn     bool          `json:"is_own"`
	CreatedAt time.Time     `json:"created_at"`
}

type PlanReviewsResponse struct {
	Reviews []ReviewItem `json:"reviews"`
	// Arithmetic mean of all ratings; nil when the plan has no reviews.
	AverageRating *float64 `json:"average_rating"`
}
