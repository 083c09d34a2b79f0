package domain

import "context"

// Store is the single shared mutable resource: an explicitly constructed
// handle over the relational database, injected into each engine.
//
// InTx runs fn against a Store bound to one database transaction. Every
// multi-record transition goes through it; if fn returns an error all writes
// made through the transactional Store are rolled back. Reads outside InTx
// may be snapshot-stale, which is acceptable for listing but not for
// mutation preconditions.
type Store interface {
	Users() UserRepository
	Requests() RequestRepository
	Offers() OfferRepository
	Orders() OrderRepository
	Products() ProductRepository

	InTx(ctx context.Context, fn func(tx Store) error) error
}
