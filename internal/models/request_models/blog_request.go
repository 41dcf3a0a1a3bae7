package request_models

type CreateBlogRequest struct {
	Title     string   `json:"title" binding:"required"`
	Subtitle  string   `json:"subtitle"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls"`
	// RFC3339; defaults to the time of the request when omitted.
	PostedAt string `json:"posted_at"`
}

type UpdateBlogRequest struct {
	Title     string   `json:"title" binding:"required"`
	Subtitle  string   `json:"subtitle"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}
