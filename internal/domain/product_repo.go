package domain

import "context"

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	ListBySupplier(ctx context.Context, supplierID string) ([]*Product, error)
	// CategoriesBySupplier returns the distinct categories the supplier
	// deals in. Feeds the offer-submission policy check.
	CategoriesBySupplier(ctx context.Context, supplierID string) ([]string, error)
}
