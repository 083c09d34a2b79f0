package order

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/metrics"
	orderdto "github.com/craveo/marketplace-service/internal/usecase/dto/order"
)

// OrderOrigin labels how an order came to exist, for metrics.
type OrderOrigin string

const (
	OriginCustomerAccept OrderOrigin = "customer_accept"
	OriginDirectAccept   OrderOrigin = "direct_accept"
)

type OrderUsecase interface {
	// CreateFromAcceptedOffer materializes an order inside the caller's
	// transaction. It must only be invoked with a Store bound to the
	// acceptance transaction, so the order write commits or rolls back
	// together with the offer and request status writes.
	CreateFromAcceptedOffer(ctx context.Context, tx domain.Store, offer *domain.Offer, request *domain.RequestPost) (*domain.Order, error)

	AdvanceStatus(ctx context.Context, input *orderdto.AdvanceStatusInput) (*domain.Order, error)

	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListActive(ctx context.Context, userID string) ([]*domain.Order, error)
	History(ctx context.Context, userID string) ([]*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Order, error)

	// RecordPlaced is called by the negotiation engine after the acceptance
	// transaction commits.
	RecordPlaced(order *domain.Order, origin OrderOrigin)
}

type DefaultOrderUsecase struct {
	Store      domain.Store
	Dispatcher domain.EventDispatcher
	Metrics    *metrics.MarketplaceMetrics
}

func NewDefaultOrderUsecase(
	store domain.Store,
	dispatcher domain.EventDispatcher,
	marketplaceMetrics *metrics.MarketplaceMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		Store:      store,
		Dispatcher: dispatcher,
		Metrics:    marketplaceMetrics,
	}
}
