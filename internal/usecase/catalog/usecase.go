package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	productdto "github.com/craveo/marketplace-service/internal/usecase/dto/product"
	"github.com/google/uuid"
)

// CatalogUsecase manages supplier product catalogs. The categories a
// supplier lists drive the offer-submission policy check.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID, supplierID string, patch *productdto.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID, supplierID string) error
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Product, error)
	CategoriesOf(ctx context.Context, supplierID string) ([]string, error)
}

type DefaultCatalogUsecase struct {
	Store domain.Store
}

func NewDefaultCatalogUsecase(store domain.Store) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{Store: store}
}

func (uc *DefaultCatalogUsecase) CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error) {
	supplier, err := uc.Store.Users().GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if !supplier.Role.CanSell() {
		return nil, fmt.Errorf("%w: user %s cannot act as supplier", domain.ErrForbidden, supplier.ID)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidState)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidState)
	}

	now := time.Now().UTC()
	newProduct := &domain.Product{
		ID:          uuid.New().String(),
		SupplierID:  supplier.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImagePath:   input.ImagePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.Store.Products().Create(ctx, newProduct); err != nil {
		return nil, err
	}
	return newProduct, nil
}

func (uc *DefaultCatalogUsecase) UpdateProduct(
	ctx context.Context,
	productID, supplierID string,
	patch *productdto.UpdateProductInput) (*domain.Product, error) {

	currentProduct, err := uc.Store.Products().GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if currentProduct.SupplierID != supplierID {
		return nil, fmt.Errorf("%w: not the owner of this product", domain.ErrForbidden)
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: product name must not be empty", domain.ErrInvalidState)
		}
		currentProduct.Name = *patch.Name
	}
	if patch.Description != nil {
		currentProduct.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidState)
		}
		currentProduct.Price = *patch.Price
	}
	if patch.Category != nil {
		currentProduct.Category = *patch.Category
	}
	if patch.ImagePath != nil {
		currentProduct.ImagePath = *patch.ImagePath
	}

	currentProduct.UpdatedAt = time.Now().UTC()
	if err := uc.Store.Products().Update(ctx, currentProduct); err != nil {
		return nil, err
	}
	return currentProduct, nil
}

func (uc *DefaultCatalogUsecase) DeleteProduct(ctx context.Context, productID, supplierID string) error {
	currentProduct, err := uc.Store.Products().GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if currentProduct.SupplierID != supplierID {
		return fmt.Errorf("%w: not the owner of this product", domain.ErrForbidden)
	}
	return uc.Store.Products().Delete(ctx, productID)
}

func (uc *DefaultCatalogUsecase) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return uc.Store.Products().GetByID(ctx, productID)
}

func (uc *DefaultCatalogUsecase) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Product, error) {
	return uc.Store.Products().ListBySupplier(ctx, supplierID)
}

func (uc *DefaultCatalogUsecase) CategoriesOf(ctx context.Context, supplierID string) ([]string, error) {
	return uc.Store.Products().CategoriesBySupplier(ctx, supplierID)
}
