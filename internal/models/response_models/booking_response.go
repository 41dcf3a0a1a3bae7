package response_models

import (
	"time"

	"github.com/google/uuid"
)

type PackageSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UserID    string          `json:"user_id"`
	UserEmail string          `json:"user_email"`
	Package   *PackageSummary `json:"package,omitempty"`
}
