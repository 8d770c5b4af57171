package db_models

type Admin struct {
	BaseModel
	Name          string
	Email         string `gorm:"unique"`
	ProfilePhoto  *string
	ContactNumber string `gorm:"size:32"`
	// Soft-delete flag; the linked User row is flipped to DELETED in the same transaction.
	IsDeleted bool `gorm:"default:false;index"`
}
