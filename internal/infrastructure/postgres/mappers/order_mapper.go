package mappers

import (
	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:                model.ID,
		Number:            model.Number,
		RequestID:         model.RequestID,
		OfferID:           model.OfferID,
		CustomerID:        model.CustomerID,
		SupplierID:        model.SupplierID,
		TotalPrice:        model.TotalPrice,
		Quantity:          model.Quantity,
		Status:            model.Status,
		DeliveryAddress:   model.DeliveryAddress,
		DeliveryLatitude:  model.DeliveryLatitude,
		DeliveryLongitude: model.DeliveryLongitude,
		DeliveredAt:       model.DeliveredAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                order.ID,
		Number:            order.Number,
		RequestID:         order.RequestID,
		OfferID:           order.OfferID,
		CustomerID:        order.CustomerID,
		SupplierID:        order.SupplierID,
		TotalPrice:        order.TotalPrice,
		Quantity:          order.Quantity,
		Status:            order.Status,
		DeliveryAddress:   order.DeliveryAddress,
		DeliveryLatitude:  order.DeliveryLatitude,
		DeliveryLongitude: order.DeliveryLongitude,
		DeliveredAt:       order.DeliveredAt,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
