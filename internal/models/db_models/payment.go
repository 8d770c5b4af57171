package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

const (
	PaymentForSubscription  = "subscription"
	PaymentForVerifiedBadge = "verified-badge"
)

type Payment struct {
	BaseModel
	UserID      uuid.UUID     `gorm:"type:uuid;index"`
	AmountMinor int64
	Currency    string        `gorm:"size:3"`
	Status      PaymentStatus `gorm:"type:varchar(16);index"`
	PaymentFor  string        `gorm:"size:32"`

	// Idempotency across gateway webhook deliveries: an event id
	// already recorded here is never applied a second time.
	GatewayEventID *string        `gorm:"uniqueIndex"`
	GatewayData    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User User `gorm:"foreignKey:UserID"`
}
