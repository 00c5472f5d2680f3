package model

// ProductModel mirrors the 'products' table. Identity is the composite
// (store_id, product_name) pair; the same name may exist at many stores with
// independent stock and price.
type ProductModel struct {
	StoreID       int64   `gorm:"primaryKey;autoIncrement:false"`
	ProductName   string  `gorm:"primaryKey;type:varchar(30)"`
	NumberOfUnits int     `gorm:"not null"`
	PricePerUnit  float64 `gorm:"type:decimal(10,2);not null"`

	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
