package response_models

import (
	"time"

	"github.com/google/uuid"
)

type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Content   string    `json:"content"`
	ImageURLs []string  `json:"image_urls"`
	PostedAt  time.Time `json:"posted_at"`
}
