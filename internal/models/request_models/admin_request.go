package request_models

type CreateAdminRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=60"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	ContactNumber string  `json:"contact_number"`
	ProfilePhoto  *string `json:"profile_photo"`
}

type UpdateAdminRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=60"`
	ContactNumber *string `json:"contact_number"`
	ProfilePhoto  *string `json:"profile_photo"`
}
