package request

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	requestdto "github.com/craveo/marketplace-service/internal/usecase/dto/request"
	"github.com/google/uuid"
)

func (uc *DefaultRequestUsecase) Create(ctx context.Context, input *requestdto.CreateRequestInput) (*domain.RequestPost, error) {
	customer, err := uc.Store.Users().GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Role.CanBuy() {
		return nil, fmt.Errorf("%w: user %s cannot act as customer", domain.ErrForbidden, customer.ID)
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidState)
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidState)
	}
	if input.OfferPrice != nil && *input.OfferPrice < 0 {
		return nil, fmt.Errorf("%w: offer price must not be negative", domain.ErrInvalidState)
	}

	now := time.Now().UTC()
	newRequest := &domain.RequestPost{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		OfferPrice:  input.OfferPrice,
		ImagePath:   input.ImagePath,
		Status:      domain.RequestOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.Store.Requests().Create(ctx, newRequest); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsCreatedTotal.WithLabelValues(newRequest.Category).Inc()
	}
	return newRequest, nil
}
