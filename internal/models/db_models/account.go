package db_models

type Account struct {
	BaseModel
	Name         string `gorm:"type:text;not null" json:"name"`
	Email        string `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
	Role         string `gorm:"type:text;not null;default:user" json:"role"`
}
