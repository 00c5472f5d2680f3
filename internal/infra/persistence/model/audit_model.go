package model

import (
	"time"
)

// ProductUpdateModel mirrors the 'product_updates' audit table. A row is
// appended for every manager-initiated change to a product.
type ProductUpdateModel struct {
	UpdateNumber int64     `gorm:"primaryKey;autoIncrement"`
	ManagerID    int64     `gorm:"not null;index"`
	StoreID      int64     `gorm:"not null;index"`
	ProductName  string    `gorm:"type:varchar(30);not null"`
	UpdatedOn    time.Time `gorm:"not null"`

	Manager *UserModel  `gorm:"foreignKey:ManagerID"`
	Store   *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductUpdateModel) TableName() string {
	return "product_updates"
}

// SupplyRequestModel mirrors the 'product_supply_requests' table.
type SupplyRequestModel struct {
	RequestNumber  int64  `gorm:"primaryKey;autoIncrement"`
	ManagerID      int64  `gorm:"not null;index"`
	WarehouseID    int64  `gorm:"not null;index"`
	StoreID        int64  `gorm:"not null;index"`
	ProductName    string `gorm:"type:varchar(30);not null"`
	UnitsRequested int    `gorm:"not null"`

	Manager   *UserModel      `gorm:"foreignKey:ManagerID"`
	Warehouse *WarehouseModel `gorm:"foreignKey:WarehouseID"`
	Store     *StoreModel     `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (SupplyRequestModel) TableName() string {
	return "product_supply_requests"
}
