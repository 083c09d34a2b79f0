package domain

import "time"

// Product is a supplier catalog entry. The negotiation engine consults the
// catalog to decide whether a supplier deals in a request's category.
type Product struct {
	ID          string
	SupplierID  string
	Name        string
	Description string
	Price       float64
	Category    string
	ImagePath   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
