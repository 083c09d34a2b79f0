package offer

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
)

func (uc *DefaultOfferUsecase) GetByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	return uc.Store.Offers().GetByID(ctx, offerID)
}

// ListByRequest returns the offers a customer can still act on.
func (uc *DefaultOfferUsecase) ListByRequest(ctx context.Context, requestID string) ([]*domain.Offer, error) {
	return uc.Store.Offers().ListByRequest(ctx, requestID,
		[]domain.OfferStatus{domain.OfferPending, domain.OfferCountered})
}

func (uc *DefaultOfferUsecase) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Offer, error) {
	return uc.Store.Offers().ListBySupplier(ctx, supplierID)
}
