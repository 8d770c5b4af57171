package db_models

import (
	"github.com/lib/pq"
)

type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
	UserStatusDeleted UserStatus = "DELETED"
)

type User struct {
	BaseModel
	Name         string
	Email        string     `gorm:"unique"`
	PasswordHash string
	Role         UserRole   `gorm:"type:varchar(16);default:'USER';index"`
	Status       UserStatus `gorm:"type:varchar(16);default:'ACTIVE';index"`

	ProfileImage *string
	Bio          string `gorm:"type:text"`
	Age          *int
	Gender       string `gorm:"size:16"`
	Country      string
	City         string
	CurrentLocation  string
	Interests        pq.StringArray `gorm:"type:text[]"`
	VisitedCountries pq.StringArray `gorm:"type:text[]"`
	BudgetRange      string         `gorm:"size:32"`
	IsVerified       bool           `gorm:"default:false"`

	TravelPlans  []TravelPlan
	Reviews      []Review
	JoinRequests []TripJoinRequest
	Payments     []Payment
}
