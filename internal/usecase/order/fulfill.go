package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const orderNumberAlphabet = "0123456789ABCDEFGHJKMNPQRSTUVWXYZ"

func (uc *DefaultOrderUsecase) CreateFromAcceptedOffer(
	ctx context.Context,
	tx domain.Store,
	offer *domain.Offer,
	request *domain.RequestPost) (*domain.Order, error) {

	if offer.Status != domain.OfferAccepted {
		return nil, fmt.Errorf("%w: offer %s is %s, expected accepted", domain.ErrInvalidState, offer.ID, offer.Status)
	}

	exists, err := tx.Orders().ExistsForRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: request %s already has an order", domain.ErrConflict, request.ID)
	}

	exists, err = tx.Orders().ExistsForOffer(ctx, offer.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: offer %s already has an order", domain.ErrConflict, offer.ID)
	}

	numberGenerator, err := nanoid.CustomASCII(orderNumberAlphabet, 10)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newOrder := &domain.Order{
		ID:         uuid.New().String(),
		Number:     numberGenerator(),
		RequestID:  request.ID,
		OfferID:    offer.ID,
		CustomerID: request.CustomerID,
		SupplierID: offer.SupplierID,
		TotalPrice: offer.ProposedPrice,
		Quantity:   request.Quantity,
		Status:     domain.OrderPlaced,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := tx.Orders().Create(ctx, newOrder); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// RecordPlaced publishes the order_placed notification and records metrics.
// Runs outside the acceptance transaction, after commit.
func (uc *DefaultOrderUsecase) RecordPlaced(order *domain.Order, origin OrderOrigin) {
	uc.notify(domain.MarketplaceEvent{
		Type:        domain.EventOrderPlaced,
		RecipientID: order.SupplierID,
		SenderID:    order.CustomerID,
		EntityID:    order.ID,
		EntityType:  "order",
		Message:     fmt.Sprintf("Order %s placed", order.Number),
	})

	if uc.Metrics != nil {
		uc.Metrics.OrdersPlacedTotal.WithLabelValues(string(origin)).Inc()
		uc.Metrics.OrdersPlacedAmount.Add(order.TotalPrice)
	}
}

func (uc *DefaultOrderUsecase) notify(event domain.MarketplaceEvent) {
	if uc.Dispatcher == nil {
		return
	}
	go func() {
		if err := uc.Dispatcher.Dispatch(event); err != nil {
			slog.Error("failed to dispatch marketplace event", "type", event.Type, "error", err.Error())
		}
	}()
}
