package repository

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultRequestRepository(db *gorm.DB) *DefaultRequestRepository {
	return &DefaultRequestRepository{DB: db}
}

func (r *DefaultRequestRepository) Create(ctx context.Context, request *domain.RequestPost) error {
	requestModel := mappers.ToGORMRequest(request)
	return translate(r.DB.WithContext(ctx).Create(requestModel).Error)
}

func (r *DefaultRequestRepository) GetByID(ctx context.Context, id string) (*domain.RequestPost, error) {
	var requestModel models.RequestPostModel
	if err := r.DB.WithContext(ctx).First(&requestModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainRequest(&requestModel), nil
}

func (r *DefaultRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.RequestPost, error) {
	var requestModel models.RequestPostModel
	if err := forUpdate(r.DB.WithContext(ctx)).First(&requestModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainRequest(&requestModel), nil
}

func (r *DefaultRequestRepository) Update(ctx context.Context, request *domain.RequestPost) error {
	requestModel := mappers.ToGORMRequest(request)
	return translate(r.DB.WithContext(ctx).Save(requestModel).Error)
}

func (r *DefaultRequestRepository) Delete(ctx context.Context, id string) error {
	return translate(r.DB.WithContext(ctx).Delete(&models.RequestPostModel{}, "id = ?", id).Error)
}

func (r *DefaultRequestRepository) List(ctx context.Context, filter domain.RequestFilter) ([]*domain.RequestPost, error) {
	query := r.DB.WithContext(ctx).Model(&models.RequestPostModel{})

	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var requestModels []models.RequestPostModel
	if err := query.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, translate(err)
	}

	requests := make([]*domain.RequestPost, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, mappers.ToDomainRequest(&requestModels[i]))
	}
	return requests, nil
}
