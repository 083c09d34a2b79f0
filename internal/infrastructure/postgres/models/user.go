package models

import (
	"time"

	"github.com/craveo/marketplace-service/internal/domain"
)

type UserModel struct {
	ID          string            `gorm:"primaryKey;type:uuid"`
	Name        string
	Surname     string
	Email       string            `gorm:"uniqueIndex"`
	PhoneNumber string
	Role        domain.UserRole   `gorm:"index"`
	Status      domain.UserStatus

	BusinessName        string
	BusinessCategory    string
	BusinessDescription string
	BusinessEmail       string
	BusinessPhoneNumber string

	PersonalImagePath string
	BusinessImagePath string

	CreatedAt time.Time
	UpdatedAt time.Time
}
