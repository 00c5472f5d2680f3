package entity

// PopularProduct is an aggregation row: a product and how many orders it has
// received within the report's scope.
type PopularProduct struct {
	ProductName string
	OrderCount  int64
}

// PopularCustomer is an aggregation row: a customer and how many orders they
// have placed within the report's scope.
type PopularCustomer struct {
	CustomerID   int64
	CustomerName string
	OrderCount   int64
}
