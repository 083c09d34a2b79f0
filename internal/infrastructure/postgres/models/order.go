package models

import (
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

// OrderModel enforces the one-order-per-request and one-order-per-offer
// invariants at the storage level.
type OrderModel struct {
	ID         string             `gorm:"primaryKey;type:uuid"`
	Number     string             `gorm:"uniqueIndex"`
	RequestID  string             `gorm:"type:uuid;uniqueIndex"`
	OfferID    string             `gorm:"type:uuid;uniqueIndex"`
	CustomerID string             `gorm:"type:uuid;index"`
	SupplierID string             `gorm:"type:uuid;index"`
	TotalPrice float64
	Quantity   int
	Status     domain.OrderStatus `gorm:"index"`

	DeliveryAddress   string
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	DeliveredAt       *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
