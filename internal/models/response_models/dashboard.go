package response_models

import "time"

// JoinRequestDetail enriches a join request with the requester's public
// profile and the target plan's summary.
type JoinRequestDetail struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	Requester PublicProfile `json:"requester"`
	Plan      PlanSummary   `json:"plan"`
	CreatedAt time.Time     `json:"created_at"`
}

type UpcomingTrip struct {
	PlanSummary
	JoinRequests []JoinRequestRef `json:"join_requests"`
}

// DashboardStats is a point-in-time snapshot; every call recomputes it
// from the store.
type DashboardStats struct {
	TotalTravelPlans     int64               `json:"total_travel_plans"`
	TotalReviews         int64               `json:"total_reviews"`
	TotalPayments        int64               `json:"total_payments"`
	IncomingJoinRequests []JoinRequestDetail `json:"incoming_join_requests"`
	AcceptedMatches      []JoinRequestDetail `json:"accepted_matches"`
	UpcomingTrips        []UpcomingTrip      `json:"upcoming_trips"`
}
