package request

import (
	"context"
	"fmt"

	"github.com/craveo/marketplace-service/internal/domain"
)

// Delete removes an open request together with its still-pending offers.
// Both writes happen in one transaction.
func (uc *DefaultRequestUsecase) Delete(ctx context.Context, requestID, callerID string) error {
	return uc.Store.InTx(ctx, func(tx domain.Store) error {
		currentRequest, err := tx.Requests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if currentRequest.CustomerID != callerID {
			return fmt.Errorf("%w: not the owner of this request", domain.ErrForbidden)
		}
		if currentRequest.Status != domain.RequestOpen {
			return fmt.Errorf("%w: request is %s, only open requests can be deleted", domain.ErrInvalidState, currentRequest.Status)
		}

		if err := tx.Offers().DeletePendingByRequest(ctx, requestID); err != nil {
			return err
		}
		return tx.Requests().Delete(ctx, requestID)
	})
}
