package request

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	requestdto "github.com/craveo/marketplace-service/internal/usecase/dto/request"
)

// Update applies a partial patch to an open request owned by the caller.
func (uc *DefaultRequestUsecase) Update(
	ctx context.Context,
	requestID, callerID string,
	patch *requestdto.UpdateRequestInput) (*domain.RequestPost, error) {

	currentRequest, err := uc.Store.Requests().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if currentRequest.CustomerID != callerID {
		return nil, fmt.Errorf("%w: not the owner of this request", domain.ErrForbidden)
	}
	if currentRequest.Status != domain.RequestOpen {
		return nil, fmt.Errorf("%w: request is %s, only open requests can be edited", domain.ErrInvalidState, currentRequest.Status)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidState)
		}
		currentRequest.Title = *patch.Title
	}
	if patch.Description != nil {
		currentRequest.Description = *patch.Description
	}
	if patch.Category != nil {
		currentRequest.Category = *patch.Category
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidState)
		}
		currentRequest.Quantity = *patch.Quantity
	}
	if patch.OfferPrice != nil {
		if *patch.OfferPrice < 0 {
			return nil, fmt.Errorf("%w: offer price must not be negative", domain.ErrInvalidState)
		}
		currentRequest.OfferPrice = patch.OfferPrice
	}
	if patch.ImagePath != nil {
		currentRequest.ImagePath = *patch.ImagePath
	}

	currentRequest.UpdatedAt = time.Now().UTC()
	if err := uc.Store.Requests().Update(ctx, currentRequest); err != nil {
		return nil, err
	}
	return currentRequest, nil
}
