package response_models

import "github.com/google/uuid"

type PackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	// A package is expired once its start date has passed (start <= today).
	Expired bool `json:"expired"`
}
