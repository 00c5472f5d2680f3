package entity

// Product is a stocked item, identified by the composite (store id, product name).
// Invariant: Units never goes negative; stock is mutated only through the
// ledger operations on ProductRepository.
type Product struct {
	StoreID int64   // The store carrying this product.
	Name    string  // Product name, unique within the store.
	Units   int     // Units currently in stock. Never negative.
	Price   float64 // Price per unit. Never negative.
}
