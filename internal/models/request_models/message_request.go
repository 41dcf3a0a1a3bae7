package request_models

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type ReplyMessageRequest struct {
	Response  string `json:"response"`
	IsReplied bool   `json:"is_replied"`
	IsRead    bool   `json:"is_read"`
}
