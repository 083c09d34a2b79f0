package request

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

// Cancel withdraws a request that has not been fulfilled yet. Suppliers with
// a live offer on it are notified.
func (uc *DefaultRequestUsecase) Cancel(ctx context.Context, requestID, callerID string) (*domain.RequestPost, error) {
	var cancelled *domain.RequestPost

	err := uc.Store.InTx(ctx, func(tx domain.Store) error {
		currentRequest, err := tx.Requests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if currentRequest.CustomerID != callerID {
			return fmt.Errorf("%w: not the owner of this request", domain.ErrForbidden)
		}
		if currentRequest.Status != domain.RequestOpen && currentRequest.Status != domain.RequestCounterOffered {
			return fmt.Errorf("%w: request is %s", domain.ErrInvalidState, currentRequest.Status)
		}

		currentRequest.Status = domain.RequestCancelledByCustomer
		currentRequest.UpdatedAt = time.Now().UTC()
		if err := tx.Requests().Update(ctx, currentRequest); err != nil {
			return err
		}
		cancelled = currentRequest
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsCancelledTotal.Inc()
	}

	liveOffers, err := uc.Store.Offers().ListByRequest(ctx, requestID,
		[]domain.OfferStatus{domain.OfferPending, domain.OfferCountered})
	if err == nil {
		for _, liveOffer := range liveOffers {
			uc.notify(domain.MarketplaceEvent{
				Type:        domain.EventRequestCancelled,
				RecipientID: liveOffer.SupplierID,
				SenderID:    callerID,
				EntityID:    requestID,
				EntityType:  "request",
				Message:     fmt.Sprintf("Request %q was cancelled by the customer", cancelled.Title),
			})
		}
	}

	return cancelled, nil
}
