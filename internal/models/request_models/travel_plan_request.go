package request_models

type CreateTravelPlanRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=120"`
	Destination string `json:"destination" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Description string `json:"description"`
	TravelType  string `json:"travel_type"`
	// RFC3339 timestamps; start must be strictly before end.
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	BudgetMinor int64    `json:"budget_minor"`
	Visibility  *bool    `json:"visibility"`
	Photos      []string `json:"photos"`
}

// UpdateTravelPlanRequest is an allow-list patch: only non-nil fields
// are written, each through its own typed column.
type UpdateTravelPlanRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=120"`
	Destination *string `json:"destination"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	TravelType  *string `json:"travel_type"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	BudgetMinor *int64  `json:"budget_minor"`
	Visibility  *bool   `json:"visibility"`

	AddPhotos    []string `json:"add_photos"`
	DeletePhotos []string `json:"delete_photos"`
}

type MatchTravelPlansQuery struct {
	Destination string   `form:"destination"`
	Country     string   `form:"country"`
	TravelType  string   `form:"travel_type"`
	Search      string   `form:"search"`
	Interests   []string `form:"interests"`
	Page        int      `form:"page"`
	PageSize    int      `form:"page_size"`
}
