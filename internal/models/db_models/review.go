package db_models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_plan"`
	TravelPlanID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_plan"`
	Rating       int       `gorm:"type:int;check:rating >= 1 AND rating <= 5"`
	Comment      string    `gorm:"type:text"`

	User       User       `gorm:"foreignKey:UserID"`
	TravelPlan TravelPlan `gorm:"foreignKey:TravelPlanID"`
}
