package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/craveo/marketplace-service/internal/domain"
	requestdto "github.com/craveo/marketplace-service/internal/usecase/dto/request"
)

// GetByID enforces the read-side visibility rule: the owner always sees the
// request; a supplier sees it while it is open or once they have an offer
// on it.
func (uc *DefaultRequestUsecase) GetByID(ctx context.Context, requestID, callerID string) (*domain.RequestPost, error) {
	currentRequest, err := uc.Store.Requests().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if currentRequest.CustomerID == callerID {
		return currentRequest, nil
	}

	caller, err := uc.Store.Users().GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleAdmin {
		return currentRequest, nil
	}
	if !caller.Role.CanSell() {
		return nil, fmt.Errorf("%w: request is not visible to this user", domain.ErrForbidden)
	}
	if currentRequest.Status == domain.RequestOpen || currentRequest.Status == domain.RequestCounterOffered {
		return currentRequest, nil
	}

	// Any offer counts here, including accepted ones: the winning supplier
	// keeps visibility into the request their order came from.
	hasOffer, err := uc.Store.Offers().HasOfferBySupplier(ctx, requestID, callerID)
	if err != nil {
		return nil, err
	}
	if hasOffer {
		return currentRequest, nil
	}
	return nil, fmt.Errorf("%w: request is not visible to this user", domain.ErrForbidden)
}

// List scopes results by the caller's role: customers see their own live
// requests, suppliers browse the open board, admins see everything.
func (uc *DefaultRequestUsecase) List(ctx context.Context, input *requestdto.ListRequestsInput) ([]*domain.RequestPost, error) {
	caller, err := uc.Store.Users().GetByID(ctx, input.CallerID)
	if err != nil {
		return nil, err
	}

	filter := domain.RequestFilter{
		Category: input.Category,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	switch {
	case caller.Role == domain.RoleAdmin:
		if input.Status != "" {
			filter.Statuses = []domain.RequestStatus{domain.RequestStatus(input.Status)}
		}
	case caller.Role.CanBuy():
		filter.CustomerID = caller.ID
		filter.Statuses = []domain.RequestStatus{domain.RequestOpen, domain.RequestCounterOffered}
	case caller.Role.CanSell():
		filter.Statuses = []domain.RequestStatus{domain.RequestOpen}
	default:
		return nil, fmt.Errorf("%w: role %q cannot list requests", domain.ErrForbidden, caller.Role)
	}

	return uc.Store.Requests().List(ctx, filter)
}

// MatchingForSupplier filters the open board through the match advisor.
// Advisor failures drop the item and nothing more.
func (uc *DefaultRequestUsecase) MatchingForSupplier(ctx context.Context, supplierID string) ([]*domain.RequestPost, error) {
	supplier, err := uc.Store.Users().GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.Role.CanSell() {
		return nil, fmt.Errorf("%w: user %s cannot act as supplier", domain.ErrForbidden, supplierID)
	}

	openRequests, err := uc.Store.Requests().List(ctx, domain.RequestFilter{
		Statuses: []domain.RequestStatus{domain.RequestOpen},
	})
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.RequestPost, 0, len(openRequests))
	for _, openRequest := range openRequests {
		if openRequest.CustomerID == supplierID {
			continue
		}
		if uc.Advisor == nil {
			matched = append(matched, openRequest)
			continue
		}
		ok, err := uc.Advisor.IsMatch(ctx, domain.MatchQuery{
			RequestTitle:        openRequest.Title,
			RequestDescription:  openRequest.Description,
			SupplierCategory:    supplier.BusinessCategory,
			SupplierDescription: supplier.BusinessDescription,
		})
		if err != nil {
			slog.Warn("match advisor failed, skipping request", "request_id", openRequest.ID, "error", err.Error())
			continue
		}
		if ok {
			matched = append(matched, openRequest)
		}
	}
	return matched, nil
}
