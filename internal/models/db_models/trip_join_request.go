package db_models

import (
	"github.com/google/uuid"
)

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestAccepted JoinRequestStatus = "ACCEPTED"
	JoinRequestRejected JoinRequestStatus = "REJECTED"
)

// TripJoinRequest links a requesting user to a plan they do not own.
// One request per (user, plan) pair; PENDING is the only transitionable state.
type TripJoinRequest struct {
	BaseModel
	UserID       uuid.UUID         `gorm:"type:uuid;uniqueIndex:idx_join_request_user_plan"`
	TravelPlanID uuid.UUID         `gorm:"type:uuid;uniqueIndex:idx_join_request_user_plan"`
	Status       JoinRequestStatus `gorm:"type:varchar(16);default:'PENDING';index"`

	User       User       `gorm:"foreignKey:UserID"`
	TravelPlan TravelPlan `gorm:"foreignKey:TravelPlanID"`
}
