package models

import (
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

// OfferModel carries a composite index for sibling lookups. The at-most-one
// pending offer per (request, supplier) rule is a partial unique index kept
// in the SQL migrations; SQLite and AutoMigrate only see the plain index.
type OfferModel struct {
	ID            string             `gorm:"primaryKey;type:uuid"`
	RequestID     string             `gorm:"type:uuid;index:idx_offer_request_supplier"`
	SupplierID    string             `gorm:"type:uuid;index:idx_offer_request_supplier"`
	ProposedPrice float64
	Message       string
	DeliveryDate  *time.Time
	Status        domain.OfferStatus `gorm:"index"`
	CreatedAt     time.Time          `gorm:"index"`
	UpdatedAt     time.Time
}
