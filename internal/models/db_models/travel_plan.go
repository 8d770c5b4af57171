package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TravelPlan struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string `gorm:"index"`
	Country     string `gorm:"index"`
	Description string `gorm:"type:text"`
	TravelType  string `gorm:"size:32"`

	// Unix seconds; StartDate < EndDate is enforced at creation.
	StartDate int64 `gorm:"index"`
	EndDate   int64

	BudgetMinor int64
	Visibility  bool           `gorm:"default:true"`
	Photos      pq.StringArray `gorm:"type:text[]"`

	User         User `gorm:"foreignKey:UserID"`
	Reviews      []Review
	JoinRequests []TripJoinRequest
}
