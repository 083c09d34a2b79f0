package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
	"github.com/craveo/marketplace-service/internal/usecase/order"
	"github.com/google/uuid"
)

func directAcceptAllowed(status domain.RequestStatus) bool {
	switch status {
	case domain.RequestOpen, domain.RequestCounterOffered, domain.RequestSupplierAccepted:
		return true
	}
	return false
}

// DirectAccept takes the request at the customer's listed price. The
// accepted offer is synthesized, sibling pending offers are cascade-rejected
// and the order is placed, all under the request row lock.
func (uc *DefaultOfferUsecase) DirectAccept(ctx context.Context, requestID, supplierID string) (*domain.Offer, *domain.Order, error) {
	supplier, err := uc.Store.Users().GetByID(ctx, supplierID)
	if err != nil {
		return nil, nil, err
	}
	if !supplier.Role.CanSell() {
		return nil, nil, fmt.Errorf("%w: user %s cannot act as supplier", domain.ErrForbidden, supplierID)
	}

	var (
		acceptedOffer *domain.Offer
		placedOrder   *domain.Order
		cascaded      int64
		customerID    string
	)
	started := time.Now()

	err = uc.Store.InTx(ctx, func(tx domain.Store) error {
		request, err := tx.Requests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request.CustomerID == supplierID {
			return fmt.Errorf("%w: cannot accept own request", domain.ErrForbidden)
		}
		if request.Status.Terminal() {
			return fmt.Errorf("%w: request %s is already %s", domain.ErrConflict, request.ID, request.Status)
		}
		if !directAcceptAllowed(request.Status) {
			return fmt.Errorf("%w: request is %s", domain.ErrInvalidState, request.Status)
		}
		if request.OfferPrice == nil {
			return fmt.Errorf("%w: request has no listed price to accept", domain.ErrInvalidState)
		}
		customerID = request.CustomerID

		now := time.Now().UTC()
		acceptedOffer = &domain.Offer{
			ID:            uuid.New().String(),
			RequestID:     request.ID,
			SupplierID:    supplierID,
			ProposedPrice: *request.OfferPrice,
			Message:       "Accepted at the listed price",
			Status:        domain.OfferAccepted,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Offers().Create(ctx, acceptedOffer); err != nil {
			return err
		}

		cascaded, err = tx.Offers().RejectSiblings(ctx, request.ID, acceptedOffer.ID)
		if err != nil {
			return err
		}

		request.Status = domain.RequestFulfilled
		request.UpdatedAt = now
		if err := tx.Requests().Update(ctx, request); err != nil {
			return err
		}

		placedOrder, err = uc.Orders.CreateFromAcceptedOffer(ctx, tx, acceptedOffer, request)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OffersSubmittedTotal.WithLabelValues("direct_accept").Inc()
		uc.Metrics.OffersAcceptedTotal.Inc()
		uc.Metrics.OffersCascadeTotal.Add(float64(cascaded))
		uc.Metrics.AcceptTxDurationSecond.Observe(time.Since(started).Seconds())
	}
	uc.notify(domain.MarketplaceEvent{
		Type:        domain.EventRequestAccepted,
		RecipientID: customerID,
		SenderID:    supplierID,
		EntityID:    requestID,
		EntityType:  "request",
		Message:     "A supplier accepted your request at the listed price",
	})
	uc.Orders.RecordPlaced(placedOrder, order.OriginDirectAccept)

	return acceptedOffer, placedOrder, nil
}

// CounterOffer submits a pending offer at the supplier's own price and moves
// the request to counter_offered.
func (uc *DefaultOfferUsecase) CounterOffer(ctx context.Context, input *offerdto.CounterOfferInput) (*domain.Offer, error) {
	if input.ProposedPrice < 0 {
		return nil, fmt.Errorf("%w: proposed price must not be negative", domain.ErrInvalidState)
	}

	supplier, err := uc.Store.Users().GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.Role.CanSell() {
		return nil, fmt.Errorf("%w: user %s cannot act as supplier", domain.ErrForbidden, supplier.ID)
	}

	var (
		counter    *domain.Offer
		customerID string
		title      string
	)
	err = uc.Store.InTx(ctx, func(tx domain.Store) error {
		request, err := tx.Requests().GetByIDForUpdate(ctx, input.RequestID)
		if err != nil {
			return err
		}
		if request.CustomerID == supplier.ID {
			return fmt.Errorf("%w: cannot counter own request", domain.ErrForbidden)
		}
		if request.Status != domain.RequestOpen && request.Status != domain.RequestCounterOffered {
			return fmt.Errorf("%w: request is %s", domain.ErrInvalidState, request.Status)
		}
		customerID = request.CustomerID
		title = request.Title

		_, err = tx.Offers().FindPending(ctx, request.ID, supplier.ID)
		if err == nil {
			return fmt.Errorf("%w: supplier already has a pending offer on request %s", domain.ErrConflict, request.ID)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		now := time.Now().UTC()
		counter = &domain.Offer{
			ID:            uuid.New().String(),
			RequestID:     request.ID,
			SupplierID:    supplier.ID,
			ProposedPrice: input.ProposedPrice,
			Message:       input.Message,
			DeliveryDate:  input.DeliveryDate,
			Status:        domain.OfferPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Offers().Create(ctx, counter); err != nil {
			return err
		}

		if request.Status != domain.RequestCounterOffered {
			request.Status = domain.RequestCounterOffered
			request.UpdatedAt = now
			if err := tx.Requests().Update(ctx, request); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(domain.MarketplaceEvent{
		Type:        domain.EventNewOffer,
		RecipientID: customerID,
		SenderID:    supplier.ID,
		EntityID:    counter.ID,
		EntityType:  "offer",
		Message:     fmt.Sprintf("New counter-offer on %q", title),
	})
	if uc.Metrics != nil {
		uc.Metrics.OffersSubmittedTotal.WithLabelValues("counter").Inc()
	}

	return counter, nil
}
