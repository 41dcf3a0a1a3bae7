package db_models

type Message struct {
	BaseModel
	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null;index" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	// Response is nil until an admin replies; IsReplied is only ever set
	// together with a non-empty response.
	Response  *string `gorm:"type:text" json:"response,omitempty"`
	IsReplied bool    `gorm:"not null;default:false" json:"is_replied"`
	IsRead    bool    `gorm:"not null;default:false" json:"is_read"`
}
