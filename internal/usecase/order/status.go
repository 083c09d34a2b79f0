package order

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	orderdto "github.com/craveo/marketplace-service/internal/usecase/dto/order"
)

// AdvanceStatus drives a placed order to a terminal state. Only placed
// orders are mutable through this entry point; the order row is locked so
// a deliver racing a cancel cannot overwrite the winner's terminal state.
func (uc *DefaultOrderUsecase) AdvanceStatus(ctx context.Context, input *orderdto.AdvanceStatusInput) (*domain.Order, error) {
	caller, err := uc.Store.Users().GetByID(ctx, input.CallerID)
	if err != nil {
		return nil, err
	}

	var (
		currentOrder *domain.Order
		event        domain.EventType
	)
	err = uc.Store.InTx(ctx, func(tx domain.Store) error {
		currentOrder, err = tx.Orders().GetByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			return err
		}

		if currentOrder.Status != domain.OrderPlaced {
			return fmt.Errorf("%w: order is %s, only placed orders can be updated", domain.ErrInvalidState, currentOrder.Status)
		}

		switch input.Action {
		case orderdto.ActionCancel:
			switch input.CallerRole {
			case "customer":
				if !caller.Role.CanBuy() || currentOrder.CustomerID != caller.ID {
					return fmt.Errorf("%w: not the customer of this order", domain.ErrForbidden)
				}
				currentOrder.Status = domain.OrderCancelledByCustomer
			case "supplier":
				if !caller.Role.CanSell() || currentOrder.SupplierID != caller.ID {
					return fmt.Errorf("%w: not the supplier of this order", domain.ErrForbidden)
				}
				currentOrder.Status = domain.OrderCancelledBySupplier
			default:
				return fmt.Errorf("%w: role %q cannot cancel orders", domain.ErrForbidden, input.CallerRole)
			}
			event = domain.EventOrderStatusUpdate

		case orderdto.ActionDeliver:
			if input.CallerRole != "supplier" || !caller.Role.CanSell() || currentOrder.SupplierID != caller.ID {
				return fmt.Errorf("%w: only the supplier of this order can mark it delivered", domain.ErrForbidden)
			}
			deliveredAt := time.Now().UTC()
			currentOrder.Status = domain.OrderDelivered
			currentOrder.DeliveredAt = &deliveredAt
			event = domain.EventOrderStatusUpdate

		default:
			return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidState, input.Action)
		}

		currentOrder.UpdatedAt = time.Now().UTC()
		return tx.Orders().Update(ctx, currentOrder)
	})
	if err != nil {
		return nil, err
	}

	recipient := currentOrder.CustomerID
	if input.CallerRole == "customer" {
		recipient = currentOrder.SupplierID
	}
	uc.notify(domain.MarketplaceEvent{
		Type:        event,
		RecipientID: recipient,
		SenderID:    caller.ID,
		EntityID:    currentOrder.ID,
		EntityType:  "order",
		Message:     fmt.Sprintf("Order %s is now %s", currentOrder.Number, currentOrder.Status),
	})
	uc.recordStatusMetrics(currentOrder, input.CallerRole)

	return currentOrder, nil
}

func (uc *DefaultOrderUsecase) recordStatusMetrics(order *domain.Order, callerRole string) {
	if uc.Metrics == nil {
		return
	}
	switch order.Status {
	case domain.OrderDelivered:
		uc.Metrics.OrdersDeliveredTotal.Inc()
	case domain.OrderCancelledByCustomer, domain.OrderCancelledBySupplier:
		uc.Metrics.OrdersCancelledTotal.WithLabelValues(callerRole).Inc()
	}
}
