package response_models

import "time"

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// PublicProfile is the slice of a user shown to other travelers
// (join-request enrichment, review authors, plan owners).
type PublicProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	ProfileImage *string  `json:"profile_image"`
	Bio          string   `json:"bio,omitempty"`
	Country      string   `json:"country,omitempty"`
	City         string   `json:"city,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	IsVerified   bool     `json:"is_verified"`
}

type ProfileResponse struct {
	PublicProfile
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	Age              *int      `json:"age"`
	Gender           string    `json:"gender,omitempty"`
	CurrentLocation  string    `json:"current_location,omitempty"`
	VisitedCountries []string  `json:"visited_countries,omitempty"`
	BudgetRange      string    `json:"budget_range,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type AdminResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ProfilePhoto  *string `json:"profile_photo"`
	ContactNumber string  `json:"contact_number"`
}
