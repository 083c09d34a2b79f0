package mappers

import (
	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainRequest(model *models.RequestPostModel) *domain.RequestPost {
	return &domain.RequestPost{
		ID:          model.ID,
		CustomerID:  model.CustomerID,
		Title:       model.Title,
		Description: model.Description,
		Category:    model.Category,
		Quantity:    model.Quantity,
		OfferPrice:  model.OfferPrice,
		Status:      model.Status,
		ImagePath:   model.ImagePath,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMRequest(request *domain.RequestPost) *models.RequestPostModel {
	return &models.RequestPostModel{
		ID:          request.ID,
		CustomerID:  request.CustomerID,
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Quantity:    request.Quantity,
		OfferPrice:  request.OfferPrice,
		Status:      request.Status,
		ImagePath:   request.ImagePath,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
