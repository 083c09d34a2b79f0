package repository

import (
	"context"

	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.WithContext(ctx).First(&userModel, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) Create(ctx context.Context, user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	return translate(r.DB.WithContext(ctx).Create(userModel).Error)
}
