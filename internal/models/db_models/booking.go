package db_models

import "github.com/google/uuid"

type Booking struct {
	BaseModel
	// External identity of the booking user; not a foreign key into accounts
	// because sign-up can be delegated to an outside identity provider.
	UserID    string    `gorm:"type:text;not null;index" json:"user_id"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;index" json:"package_id"`
	Package   *Package  `gorm:"foreignKey:PackageID" json:"package,omitempty"`
}
