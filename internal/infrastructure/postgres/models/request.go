package models

import (
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

type RequestPostModel struct {
	ID          string               `gorm:"primaryKey;type:uuid"`
	CustomerID  string               `gorm:"type:uuid;index"`
	Title       string
	Description string
	Category    string               `gorm:"index"`
	Quantity    int                  `gorm:"not null"`
	OfferPrice  *float64
	Status      domain.RequestStatus `gorm:"index"`
	ImagePath   string
	CreatedAt   time.Time            `gorm:"index"`
	UpdatedAt   time.Time
}
