package model

import (
	"time"
)

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Latitude        float64   `gorm:"type:decimal(8,6);not null"`
	Longitude       float64   `gorm:"type:decimal(9,6);not null"`
	ManagerID       int64     `gorm:"not null;index"`
	DateEstablished time.Time `gorm:"type:date"`

	Manager *UserModel `gorm:"foreignKey:ManagerID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
