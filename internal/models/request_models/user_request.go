package request_models

// UpdateProfileRequest patches only the listed profile fields; nothing
// outside this allow-list ever reaches the store.
type UpdateProfileRequest struct {
	Name             *string  `json:"name" binding:"omitempty,min=2,max=60"`
	Bio              *string  `json:"bio"`
	Age              *int     `json:"age"`
	Gender           *string  `json:"gender"`
	Country          *string  `json:"country"`
	City             *string  `json:"city"`
	CurrentLocation  *string  `json:"current_location"`
	Interests        []string `json:"interests"`
	VisitedCountries []string `json:"visited_countries"`
	BudgetRange      *string  `json:"budget_range"`
	ProfileImage     *string  `json:"profile_image"`
}

// UploadProfileImageRequest carries a raw or data-URI base64 image.
type UploadProfileImageRequest struct {
	Image string `json:"image" binding:"required"`
}

type ChangeUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE BLOCKED DELETED"`
}
