package repository

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) Create(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	return translate(r.DB.WithContext(ctx).Create(productModel).Error)
}

func (r *DefaultProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := r.DB.WithContext(ctx).First(&productModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultProductRepository) Update(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	return translate(r.DB.WithContext(ctx).Save(productModel).Error)
}

func (r *DefaultProductRepository) Delete(ctx context.Context, id string) error {
	return translate(r.DB.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id).Error)
}

func (r *DefaultProductRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	err := r.DB.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, translate(err)
	}

	products := make([]*domain.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, mappers.ToDomainProduct(&productModels[i]))
	}
	return products, nil
}

func (r *DefaultProductRepository) CategoriesBySupplier(ctx context.Context, supplierID string) ([]string, error) {
	var categories []string
	err := r.DB.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("supplier_id = ?", supplierID).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}
