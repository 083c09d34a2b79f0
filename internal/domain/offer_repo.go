package domain

import (
	"context"
	"time"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	Update(ctx context.Context, offer *Offer) error
	// FindPending returns the supplier's pending offer on the request, or
	// ErrNotFound.
	FindPending(ctx context.Context, requestID, supplierID string) (*Offer, error)
	// HasOfferBySupplier reports whether the supplier ever offered on the
	// request, regardless of offer status.
	HasOfferBySupplier(ctx context.Context, requestID, supplierID string) (bool, error)
	ListByRequest(ctx context.Context, requestID string, statuses []OfferStatus) ([]*Offer, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*Offer, error)
	// RejectSiblings moves every pending/countered offer on the request,
	// except keepID, to rejected. Returns the number of offers rejected.
	RejectSiblings(ctx context.Context, requestID, keepID string) (int64, error)
	// DeletePendingByRequest removes still-pending offers when an open
	// request is deleted by its customer.
	DeletePendingByRequest(ctx context.Context, requestID string) error
	// ExpirePendingBefore moves pending offers created before the cutoff to
	// expired. Returns the number of offers expired.
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
