package order

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
)

func (uc *DefaultOrderUsecase) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.Store.Orders().GetByID(ctx, orderID)
}

// ListActive returns orders still in flight where the user is either side.
func (uc *DefaultOrderUsecase) ListActive(ctx context.Context, userID string) ([]*domain.Order, error) {
	return uc.Store.Orders().ListActiveByUser(ctx, userID)
}

// History returns delivered and cancelled orders where the user is either side.
func (uc *DefaultOrderUsecase) History(ctx context.Context, userID string) ([]*domain.Order, error) {
	return uc.Store.Orders().ListHistoryByUser(ctx, userID)
}

func (uc *DefaultOrderUsecase) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return uc.Store.Orders().ListByCustomer(ctx, customerID)
}

func (uc *DefaultOrderUsecase) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Order, error) {
	return uc.Store.Orders().ListBySupplier(ctx, supplierID)
}
