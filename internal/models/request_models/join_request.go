package request_models

type SendJoinRequest struct {
	TravelPlanID string `json:"travel_plan_id" binding:"required,uuid"`
}

type UpdateJoinRequestStatus struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}
