package request_models

type SaveFamilyRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	UserEmail       string `json:"user_email" binding:"required,email"`
	Adults          int    `json:"adults" binding:"gte=0"`
	Children        int    `json:"children" binding:"gte=0"`
	Babies          int    `json:"babies" binding:"gte=0"`
	SpecialRequests string `json:"special_requests"`
}
