package domain

// Product is a single catalog entry of a restaurant snapshot.
type Product struct {
	ID    ProductID
	Name  string
	Price Money
}

// Restaurant is a point-in-time, read-only view of a restaurant's
// catalog and availability, supplied by an external lookup. It is
// never persisted by this service.
type Restaurant struct {
	ID       RestaurantID
	Products []Product
	Active   bool
}

// FindProduct returns the first catalog entry with the given id.
func (r *Restaurant) FindProduct(id ProductID) (Product, bool) {
	for _, p := range r.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
