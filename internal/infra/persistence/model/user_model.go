// Package model holds the GORM table mappings for the PostgreSQL schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Coordinates are nullable; a user
// without them has no recorded location and fails proximity-scoped
// operations instead of being placed at (0,0).
type UserModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	Name      string   `gorm:"type:varchar(50);unique;not null"`
	Secret    string   `gorm:"type:varchar(255);not null"`
	Latitude  *float64 `gorm:"type:decimal(8,6)"`
	Longitude *float64 `gorm:"type:decimal(9,6)"`
	Role      string   `gorm:"type:varchar(10);not null;default:'customer'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
