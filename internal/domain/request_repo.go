package domain

import "context"

// RequestFilter narrows List results. Zero values mean "any".
type RequestFilter struct {
	CustomerID string
	Category   string
	Statuses   []RequestStatus
	Limit      int
	Offset     int
}

type RequestRepository interface {
	Create(ctx context.Context, request *RequestPost) error
	GetByID(ctx context.Context, id string) (*RequestPost, error)
	// GetByIDForUpdate locks the request row for the duration of the
	// enclosing transaction. Concurrent accept attempts serialize on it.
	GetByIDForUpdate(ctx context.Context, id string) (*RequestPost, error)
	Update(ctx context.Context, request *RequestPost) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RequestFilter) ([]*RequestPost, error)
}
