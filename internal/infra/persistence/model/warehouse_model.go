package model

// WarehouseModel mirrors the 'warehouses' table.
type WarehouseModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Area      int     `gorm:"not null"`
	Latitude  float64 `gorm:"type:decimal(8,6);not null"`
	Longitude float64 `gorm:"type:decimal(9,6);not null"`
}

// TableName explicitly sets the table name for GORM.
func (WarehouseModel) TableName() string {
	return "warehouses"
}
