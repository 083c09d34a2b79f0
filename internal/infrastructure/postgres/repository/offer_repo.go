package repository

import (
	"context"
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOfferRepository struct {
	DB *gorm.DB
}

func NewDefaultOfferRepository(db *gorm.DB) *DefaultOfferRepository {
	return &DefaultOfferRepository{DB: db}
}

func (r *DefaultOfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	offerModel := mappers.ToGORMOffer(offer)
	return translate(r.DB.WithContext(ctx).Create(offerModel).Error)
}

func (r *DefaultOfferRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	var offerModel models.OfferModel
	if err := r.DB.WithContext(ctx).First(&offerModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainOffer(&offerModel), nil
}

func (r *DefaultOfferRepository) Update(ctx context.Context, offer *domain.Offer) error {
	offerModel := mappers.ToGORMOffer(offer)
	return translate(r.DB.WithContext(ctx).Save(offerModel).Error)
}

func (r *DefaultOfferRepository) FindPending(ctx context.Context, requestID, supplierID string) (*domain.Offer, error) {
	var offerModel models.OfferModel
	err := r.DB.WithContext(ctx).
		Where("request_id = ? AND supplier_id = ? AND status = ?", requestID, supplierID, domain.OfferPending).
		First(&offerModel).Error
	if err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainOffer(&offerModel), nil
}

func (r *DefaultOfferRepository) HasOfferBySupplier(ctx context.Context, requestID, supplierID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.OfferModel{}).
		Where("request_id = ? AND supplier_id = ?", requestID, supplierID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *DefaultOfferRepository) ListByRequest(ctx context.Context, requestID string, statuses []domain.OfferStatus) ([]*domain.Offer, error) {
	query := r.DB.WithContext(ctx).Where("request_id = ?", requestID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var offerModels []models.OfferModel
	if err := query.Order("created_at ASC").Find(&offerModels).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainOffers(offerModels), nil
}

// ListBySupplier returns the supplier's negotiation history. Accepted offers
// are excluded; those surface through the orders they produced.
func (r *DefaultOfferRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Offer, error) {
	var offerModels []models.OfferModel
	err := r.DB.WithContext(ctx).
		Where("supplier_id = ? AND status <> ?", supplierID, domain.OfferAccepted).
		Order("created_at DESC").
		Find(&offerModels).Error
	if err != nil {
		return nil, translate(err)
	}
	return toDomainOffers(offerModels), nil
}

func (r *DefaultOfferRepository) RejectSiblings(ctx context.Context, requestID, keepID string) (int64, error) {
	result := r.DB.WithContext(ctx).
		Model(&models.OfferModel{}).
		Where("request_id = ? AND id <> ? AND status IN ?", requestID, keepID,
			[]domain.OfferStatus{domain.OfferPending, domain.OfferCountered}).
		Updates(map[string]any{"status": domain.OfferRejected, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DefaultOfferRepository) DeletePendingByRequest(ctx context.Context, requestID string) error {
	err := r.DB.WithContext(ctx).
		Where("request_id = ? AND status = ?", requestID, domain.OfferPending).
		Delete(&models.OfferModel{}).Error
	return translate(err)
}

func (r *DefaultOfferRepository) ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.DB.WithContext(ctx).
		Model(&models.OfferModel{}).
		Where("status = ? AND created_at < ?", domain.OfferPending, cutoff).
		Updates(map[string]any{"status": domain.OfferExpired, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

func toDomainOffers(offerModels []models.OfferModel) []*domain.Offer {
	offers := make([]*domain.Offer, 0, len(offerModels))
	for i := range offerModels {
		offers = append(offers, mappers.ToDomainOffer(&offerModels[i]))
	}
	return offers
}
