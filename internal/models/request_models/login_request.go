package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	Bio              string   `json:"bio"`
	Age              *int     `json:"age"`
	Gender           string   `json:"gender"`
	Country          string   `json:"country"`
	City             string   `json:"city"`
	CurrentLocation  string   `json:"current_location"`
	Interests        []string `json:"interests"`
	VisitedCountries []string `json:"visited_countries"`
	BudgetRange      string   `json:"budget_range"`
	ProfileImage     *string  `json:"profile_image"`
}
