package mappers

import (
	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainOffer(model *models.OfferModel) *domain.Offer {
	return &domain.Offer{
		ID:            model.ID,
		RequestID:     model.RequestID,
		SupplierID:    model.SupplierID,
		ProposedPrice: model.ProposedPrice,
		Message:       model.Message,
		DeliveryDate:  model.DeliveryDate,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMOffer(offer *domain.Offer) *models.OfferModel {
	return &models.OfferModel{
		ID:            offer.ID,
		RequestID:     offer.RequestID,
		SupplierID:    offer.SupplierID,
		ProposedPrice: offer.ProposedPrice,
		Message:       offer.Message,
		DeliveryDate:  offer.DeliveryDate,
		Status:        offer.Status,
		CreatedAt:     offer.CreatedAt,
		UpdatedAt:     offer.UpdatedAt,
	}
}
