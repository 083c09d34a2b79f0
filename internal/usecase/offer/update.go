package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
)

// Update lets a supplier amend their own offer while it is still pending.
// The edit runs under the request row lock so it cannot overwrite a status
// transition committed by a concurrent acceptance or expiry.
func (uc *DefaultOfferUsecase) Update(
	ctx context.Context,
	offerID, supplierID string,
	patch *offerdto.UpdateOfferInput) (*domain.Offer, error) {

	if patch.ProposedPrice != nil && *patch.ProposedPrice < 0 {
		return nil, fmt.Errorf("%w: proposed price must not be negative", domain.ErrInvalidState)
	}

	var updated *domain.Offer
	err := uc.Store.InTx(ctx, func(tx domain.Store) error {
		currentOffer, err := tx.Offers().GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if currentOffer.SupplierID != supplierID {
			return fmt.Errorf("%w: not the owner of this offer", domain.ErrForbidden)
		}

		if _, err := tx.Requests().GetByIDForUpdate(ctx, currentOffer.RequestID); err != nil {
			return err
		}

		// Re-read under the lock before checking the status.
		currentOffer, err = tx.Offers().GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if currentOffer.Status != domain.OfferPending {
			return fmt.Errorf("%w: offer is %s, only pending offers can be edited", domain.ErrInvalidState, currentOffer.Status)
		}

		if patch.ProposedPrice != nil {
			currentOffer.ProposedPrice = *patch.ProposedPrice
		}
		if patch.Message != nil {
			currentOffer.Message = *patch.Message
		}
		if patch.DeliveryDate != nil {
			currentOffer.DeliveryDate = patch.DeliveryDate
		}

		currentOffer.UpdatedAt = time.Now().UTC()
		if err := tx.Offers().Update(ctx, currentOffer); err != nil {
			return err
		}
		updated = currentOffer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
