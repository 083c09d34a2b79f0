package repository

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

var historyStatuses = []domain.OrderStatus{
	domain.OrderDelivered,
	domain.OrderCompleted,
	domain.OrderCancelledByCustomer,
	domain.OrderCancelledBySupplier,
}

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	return translate(r.DB.WithContext(ctx).Create(orderModel).Error)
}

func (r *DefaultOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := forUpdate(r.DB.WithContext(ctx)).First(&orderModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	return translate(r.DB.WithContext(ctx).Save(orderModel).Error)
}

func (r *DefaultOrderRepository) ExistsForRequest(ctx context.Context, requestID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *DefaultOrderRepository) ExistsForOffer(ctx context.Context, offerID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("offer_id = ?", offerID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *DefaultOrderRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Where("(customer_id = ? OR supplier_id = ?) AND status = ?", userID, userID, domain.OrderPlaced).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainOrders(orderModels), nil
}

func (r *DefaultOrderRepository) ListHistoryByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Where("(customer_id = ? OR supplier_id = ?) AND status IN ?", userID, userID, historyStatuses).
		Order("updated_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainOrders(orderModels), nil
}

func (r *DefaultOrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainOrders(orderModels), nil
}

func (r *DefaultOrderRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainOrders(orderModels), nil
}

func toDomainOrders(orderModels []models.OrderModel) []*domain.Order {
	orders := make([]*domain.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, mappers.ToDomainOrder(&orderModels[i]))
	}
	return orders
}
