package response_models

import "time"

// PlanSummary is the compact plan shape embedded in join-request and
// dashboard payloads.
type PlanSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Country     string    `json:"country"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type PlanDetail struct {
	PlanSummary
	Description string            `json:"description"`
	TravelType  string            `json:"travel_type,omitempty"`
	BudgetMinor int64             `json:"budget_minor"`
	Visibility  bool              `json:"visibility"`
	Photos      []string          `json:"photos"`
	Owner       PublicProfile     `json:"owner"`
	Reviews     []ReviewItem      `json:"reviews"`
	Requests    []JoinRequestRef  `json:"join_requests"`
	CreatedAt   time.Time         `json:"created_at"`
}

// JoinRequestRef carries only id and status, for plan/trip payloads
// where the requester is not disclosed.
type JoinRequestRef struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type PlanListResponse struct {
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
	Plans    []PlanDetail `json:"plans"`
}
