package offer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	offerdto "github.com/craveo/marketplace-service/internal/usecase/dto/offer"
	"github.com/google/uuid"
)

// Submit creates a pending offer on an open request. The request itself
// stays open so other suppliers keep bidding. Preconditions are checked
// under the request row lock so a submit racing an acceptance cannot land
// an offer on a request that is no longer open.
func (uc *DefaultOfferUsecase) Submit(ctx context.Context, input *offerdto.SubmitOfferInput) (*domain.Offer, error) {
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
		newOffer   *domain.Offer
		customerID string
		title      string
	)
	err = uc.Store.InTx(ctx, func(tx domain.Store) error {
		request, err := tx.Requests().GetByIDForUpdate(ctx, input.RequestID)
		if err != nil {
			return err
		}
		if request.CustomerID == supplier.ID {
			return fmt.Errorf("%w: cannot offer on own request", domain.ErrForbidden)
		}
		if request.Status != domain.RequestOpen {
			return fmt.Errorf("%w: request is %s, offers are accepted only while open", domain.ErrInvalidState, request.Status)
		}
		customerID = request.CustomerID
		title = request.Title

		categories, err := tx.Products().CategoriesBySupplier(ctx, supplier.ID)
		if err != nil {
			return err
		}
		if !slices.Contains(categories, request.Category) {
			return fmt.Errorf("%w: supplier catalog does not cover category %q", domain.ErrForbidden, request.Category)
		}

		_, err = tx.Offers().FindPending(ctx, request.ID, supplier.ID)
		if err == nil {
			return fmt.Errorf("%w: supplier already has a pending offer on request %s", domain.ErrConflict, request.ID)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		now := time.Now().UTC()
		newOffer = &domain.Offer{
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
		return tx.Offers().Create(ctx, newOffer)
	})
	if err != nil {
		return nil, err
	}

	uc.notify(domain.MarketplaceEvent{
		Type:        domain.EventNewOffer,
		RecipientID: customerID,
		SenderID:    supplier.ID,
		EntityID:    newOffer.ID,
		EntityType:  "offer",
		Message:     fmt.Sprintf("New offer on %q", title),
	})
	if uc.Metrics != nil {
		uc.Metrics.OffersSubmittedTotal.WithLabelValues("initial").Inc()
	}

	return newOffer, nil
}
