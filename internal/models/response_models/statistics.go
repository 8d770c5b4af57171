package response_models

// AppStatistics is the admin-facing aggregate snapshot. GroupsFormed
// counts join requests in the ACCEPTED state.
type AppStatistics struct {
	ActiveUsers      int64    `json:"active_users"`
	TotalTravelPlans int64    `json:"total_travel_plans"`
	GroupsFormed     int64    `json:"groups_formed"`
	Countries        int64    `json:"countries"`
	CommunityImages  []string `json:"community_images"`
}
