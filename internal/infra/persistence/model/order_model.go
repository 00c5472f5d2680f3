package model

import (
	"time"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	OrderNumber  int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64     `gorm:"not null;index"`
	StoreID      int64     `gorm:"not null;index"`
	ProductName  string    `gorm:"type:varchar(30);not null"`
	UnitsOrdered int       `gorm:"not null"`
	OrderTime    time.Time `gorm:"not null"`

	Customer *UserModel  `gorm:"foreignKey:CustomerID"`
	Store    *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
