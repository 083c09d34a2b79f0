package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
	"github.com/craveo/marketplace-service/internal/usecase/order"
)

// Respond applies the customer's decision. Accept runs as one transaction:
// the request row is locked, preconditions are re-checked under the lock,
// the winning offer is accepted, siblings are cascade-rejected, the request
// moves to fulfilled and the order is created. Any failure rolls the whole
// transition back.
func (uc *DefaultOfferUsecase) Respond(
	ctx context.Context,
	offerID, customerID string,
	action offerdto.RespondAction) (*domain.Offer, *domain.Order, error) {

	var (
		respondedOffer *domain.Offer
		placedOrder    *domain.Order
		cascaded       int64
	)
	started := time.Now()

	err := uc.Store.InTx(ctx, func(tx domain.Store) error {
		currentOffer, err := tx.Offers().GetByID(ctx, offerID)
		if err != nil {
			return err
		}

		request, err := tx.Requests().GetByIDForUpdate(ctx, currentOffer.RequestID)
		if err != nil {
			return err
		}
		if request.CustomerID != customerID {
			return fmt.Errorf("%w: only the request owner can respond to its offers", domain.ErrForbidden)
		}
		if request.Status.Terminal() {
			return fmt.Errorf("%w: request %s is already %s", domain.ErrConflict, request.ID, request.Status)
		}

		// Re-read under the lock: the offer may have been rejected,
		// cancelled or expired between the first read and lock acquisition.
		currentOffer, err = tx.Offers().GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if !currentOffer.Status.Respondable() {
			return fmt.Errorf("%w: offer is %s", domain.ErrInvalidState, currentOffer.Status)
		}

		now := time.Now().UTC()
		switch action {
		case offerdto.ActionAccept:
			currentOffer.Status = domain.OfferAccepted
			currentOffer.UpdatedAt = now
			if err := tx.Offers().Update(ctx, currentOffer); err != nil {
				return err
			}

			cascaded, err = tx.Offers().RejectSiblings(ctx, request.ID, currentOffer.ID)
			if err != nil {
				return err
			}

			request.Status = domain.RequestFulfilled
			request.UpdatedAt = now
			if err := tx.Requests().Update(ctx, request); err != nil {
				return err
			}

			placedOrder, err = uc.Orders.CreateFromAcceptedOffer(ctx, tx, currentOffer, request)
			if err != nil {
				return err
			}

		case offerdto.ActionReject:
			currentOffer.Status = domain.OfferRejected
			currentOffer.UpdatedAt = now
			if err := tx.Offers().Update(ctx, currentOffer); err != nil {
				return err
			}

		case offerdto.ActionCounter:
			currentOffer.Status = domain.OfferCountered
			currentOffer.UpdatedAt = now
			if err := tx.Offers().Update(ctx, currentOffer); err != nil {
				return err
			}
			request.Status = domain.RequestCounterOffered
			request.UpdatedAt = now
			if err := tx.Requests().Update(ctx, request); err != nil {
				return err
			}

		default:
			return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidState, action)
		}

		respondedOffer = currentOffer
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	switch action {
	case offerdto.ActionAccept:
		if uc.Metrics != nil {
			uc.Metrics.OffersAcceptedTotal.Inc()
			uc.Metrics.OffersCascadeTotal.Add(float64(cascaded))
			uc.Metrics.AcceptTxDurationSecond.Observe(time.Since(started).Seconds())
		}
		uc.notify(domain.MarketplaceEvent{
			Type:        domain.EventOfferAccepted,
			RecipientID: respondedOffer.SupplierID,
			SenderID:    customerID,
			EntityID:    respondedOffer.ID,
			EntityType:  "offer",
			Message:     "Your offer was accepted",
		})
		uc.Orders.RecordPlaced(placedOrder, order.OriginCustomerAccept)

	case offerdto.ActionReject:
		if uc.Metrics != nil {
			uc.Metrics.OffersRejectedTotal.Inc()
		}
		uc.notify(domain.MarketplaceEvent{
			Type:        domain.EventOfferRejected,
			RecipientID: respondedOffer.SupplierID,
			SenderID:    customerID,
			EntityID:    respondedOffer.ID,
			EntityType:  "offer",
			Message:     "Your offer was rejected",
		})

	case offerdto.ActionCounter:
		uc.notify(domain.MarketplaceEvent{
			Type:        domain.EventOfferCountered,
			RecipientID: respondedOffer.SupplierID,
			SenderID:    customerID,
			EntityID:    respondedOffer.ID,
			EntityType:  "offer",
			Message:     "The customer countered your offer",
		})
	}

	return respondedOffer, placedOrder, nil
}
