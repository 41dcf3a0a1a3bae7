package db_models

type FamilyInfo struct {
	BaseModel
	// One row per user; the unique index backs the upsert.
	UserID          string `gorm:"type:text;not null;uniqueIndex" json:"user_id"`
	UserEmail       string `gorm:"type:text;not null" json:"user_email"`
	Adults          int    `gorm:"not null;default:0" json:"adults"`
	Children        int    `gorm:"not null;default:0" json:"children"`
	Babies          int    `gorm:"not null;default:0" json:"babies"`
	SpecialRequests string `gorm:"type:text" json:"special_requests"`
}
