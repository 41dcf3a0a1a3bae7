package db_models

import "time"

type Package struct {
	BaseModel
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"type:text" json:"image_url"`
	// Calendar dates; only the year/month/day components are meaningful.
	// Overlapping date ranges are not validated; "expired" is derived at
	// read time, never stored.
	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`
}
