package request

import (
	"context"
	"log/slog"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/metrics"
	requestdto "github.com/craveo/marketplace-service/internal/usecase/dto/request"
)

type RequestUsecase interface {
	Create(ctx context.Context, input *requestdto.CreateRequestInput) (*domain.RequestPost, error)
	Update(ctx context.Context, requestID, callerID string, patch *requestdto.UpdateRequestInput) (*domain.RequestPost, error)
	Delete(ctx context.Context, requestID, callerID string) error
	Cancel(ctx context.Context, requestID, callerID string) (*domain.RequestPost, error)

	GetByID(ctx context.Context, requestID, callerID string) (*domain.RequestPost, error)
	List(ctx context.Context, input *requestdto.ListRequestsInput) ([]*domain.RequestPost, error)

	// MatchingForSupplier returns open requests the match advisor considers
	// a fit for the supplier's business profile.
	MatchingForSupplier(ctx context.Context, supplierID string) ([]*domain.RequestPost, error)
}

type DefaultRequestUsecase struct {
	Store      domain.Store
	Advisor    domain.MatchAdvisor
	Dispatcher domain.EventDispatcher
	Metrics    *metrics.MarketplaceMetrics
}

func NewDefaultRequestUsecase(
	store domain.Store,
	advisor domain.MatchAdvisor,
	dispatcher domain.EventDispatcher,
	marketplaceMetrics *metrics.MarketplaceMetrics) *DefaultRequestUsecase {

	return &DefaultRequestUsecase{
		Store:      store,
		Advisor:    advisor,
		Dispatcher: dispatcher,
		Metrics:    marketplaceMetrics,
	}
}

func (uc *DefaultRequestUsecase) notify(event domain.MarketplaceEvent) {
	if uc.Dispatcher == nil {
		return
	}
	go func() {
		if err := uc.Dispatcher.Dispatch(event); err != nil {
			slog.Error("failed to dispatch marketplace event", "type", event.Type, "error", err.Error())
		}
	}()
}
