package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

// Cancel withdraws the supplier's own pending offer. The request row is
// locked and the offer re-read under the lock, so a cancel racing an
// acceptance cannot resurrect an offer the acceptance already rejected.
func (uc *DefaultOfferUsecase) Cancel(ctx context.Context, offerID, supplierID string) (*domain.Offer, error) {
	var (
		cancelled  *domain.Offer
		customerID string
		title      string
	)
	err := uc.Store.InTx(ctx, func(tx domain.Store) error {
		currentOffer, err := tx.Offers().GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if currentOffer.SupplierID != supplierID {
			return fmt.Errorf("%w: not the owner of this offer", domain.ErrForbidden)
		}

		request, err := tx.Requests().GetByIDForUpdate(ctx, currentOffer.RequestID)
		if err != nil {
			return err
		}
		customerID = request.CustomerID
		title = request.Title

		// Re-read under the lock: a concurrent accept may have rejected
		// this offer between the first read and lock acquisition.
		currentOffer, err = tx.Offers().GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if currentOffer.Status != domain.OfferPending {
			return fmt.Errorf("%w: offer is %s, only pending offers can be cancelled", domain.ErrInvalidState, currentOffer.Status)
		}

		currentOffer.Status = domain.OfferCancelledBySupplier
		currentOffer.UpdatedAt = time.Now().UTC()
		if err := tx.Offers().Update(ctx, currentOffer); err != nil {
			return err
		}
		cancelled = currentOffer
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(domain.MarketplaceEvent{
		Type:        domain.EventOfferCancelled,
		RecipientID: customerID,
		SenderID:    supplierID,
		EntityID:    cancelled.ID,
		EntityType:  "offer",
		Message:     fmt.Sprintf("An offer on %q was withdrawn", title),
	})

	return cancelled, nil
}
