package offer

import (
	"context"
	"log/slog"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/metrics"
	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
	"github.com/craveo/marketplace-service/internal/usecase/order"
)

type OfferUsecase interface {
	Submit(ctx context.Context, input *offerdto.SubmitOfferInput) (*domain.Offer, error)

	// DirectAccept lets a supplier take the request at the customer's
	// listed price. Synthesizes an accepted offer and places the order in
	// one transaction.
	DirectAccept(ctx context.Context, requestID, supplierID string) (*domain.Offer, *domain.Order, error)

	// CounterOffer submits a pending offer against a request and moves the
	// request to counter_offered.
	CounterOffer(ctx context.Context, input *offerdto.CounterOfferInput) (*domain.Offer, error)

	// Respond applies the customer's decision on an offer. On accept it
	// returns the placed order as well.
	Respond(ctx context.Context, offerID, customerID string, action offerdto.RespondAction) (*domain.Offer, *domain.Order, error)

	Update(ctx context.Context, offerID, supplierID string, patch *offerdto.UpdateOfferInput) (*domain.Offer, error)
	Cancel(ctx context.Context, offerID, supplierID string) (*domain.Offer, error)

	// ExpireStale moves pending offers older than ttl to expired. Run by
	// the background sweeper.
	ExpireStale(ctx context.Context, ttl time.Duration) (int64, error)

	GetByID(ctx context.Context, offerID string) (*domain.Offer, error)
	ListByRequest(ctx context.Context, requestID string) ([]*domain.Offer, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Offer, error)
}

type DefaultOfferUsecase struct {
	Store      domain.Store
	Orders     order.OrderUsecase
	Dispatcher domain.EventDispatcher
	Metrics    *metrics.MarketplaceMetrics
}

func NewDefaultOfferUsecase(
	store domain.Store,
	orders order.OrderUsecase,
	dispatcher domain.EventDispatcher,
	marketplaceMetrics *metrics.MarketplaceMetrics) *DefaultOfferUsecase {

	return &DefaultOfferUsecase{
		Store:      store,
		Orders:     orders,
		Dispatcher: dispatcher,
		Metrics:    marketplaceMetrics,
	}
}

func (uc *DefaultOfferUsecase) notify(event domain.MarketplaceEvent) {
	if uc.Dispatcher == nil {
		return
	}
	go func() {
		if err := uc.Dispatcher.Dispatch(event); err != nil {
			slog.Error("failed to dispatch marketplace event", "type", event.Type, "error", err.Error())
		}
	}()
}
