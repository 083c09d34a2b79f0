package domain

import "context"

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// GetByIDForUpdate locks the order row for the duration of the
	// enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, order *Order) error
	ExistsForRequest(ctx context.Context, requestID string) (bool, error)
	ExistsForOffer(ctx context.Context, offerID string) (bool, error)
	// ListActiveByUser returns placed orders where the user is customer or
	// supplier.
	ListActiveByUser(ctx context.Context, userID string) ([]*Order, error)
	// ListHistoryByUser returns delivered and cancelled orders where the
	// user is customer or supplier.
	ListHistoryByUser(ctx context.Context, userID string) ([]*Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*Order, error)
}
