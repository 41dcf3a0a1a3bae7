package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ImageURLs is an ordered list of image references persisted as a single
// JSON text column. Encode/decode happens only here, at the storage
// boundary; order must survive the round trip.
type ImageURLs []string

func (u ImageURLs) Value() (driver.Value, error) {
	if u == nil {
		u = ImageURLs{}
	}
	b, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (u *ImageURLs) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*u = nil
		return nil
	case []byte:
		return json.Unmarshal(v, u)
	case string:
		return json.Unmarshal([]byte(v), u)
	default:
		return errors.New("image_urls: unsupported column type")
	}
}

type BlogPost struct {
	BaseModel
	Title     string    `gorm:"type:text;not null" json:"title"`
	Subtitle  string    `gorm:"type:text" json:"subtitle"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURLs ImageURLs `gorm:"type:text" json:"image_urls"`
	PostedAt  int64     `gorm:"not null;index" json:"posted_at"`
}
