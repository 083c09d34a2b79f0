package mappers

import (
	"github.com/craveo/marketplace-service/internal/domain"
	"github.com/craveo/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:                  model.ID,
		Name:                model.Name,
		Surname:             model.Surname,
		Email:               model.Email,
		PhoneNumber:         model.PhoneNumber,
		Role:                model.Role,
		Status:              model.Status,
		BusinessName:        model.BusinessName,
		BusinessCategory:    model.BusinessCategory,
		BusinessDescription: model.BusinessDescription,
		BusinessEmail:       model.BusinessEmail,
		BusinessPhoneNumber: model.BusinessPhoneNumber,
		PersonalImagePath:   model.PersonalImagePath,
		BusinessImagePath:   model.BusinessImagePath,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:                  user.ID,
		Name:                user.Name,
		Surname:             user.Surname,
		Email:               user.Email,
		PhoneNumber:         user.PhoneNumber,
		Role:                user.Role,
		Status:              user.Status,
		BusinessName:        user.BusinessName,
		BusinessCategory:    user.BusinessCategory,
		BusinessDescription: user.BusinessDescription,
		BusinessEmail:       user.BusinessEmail,
		BusinessPhoneNumber: user.BusinessPhoneNumber,
		PersonalImagePath:   user.PersonalImagePath,
		BusinessImagePath:   user.BusinessImagePath,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}
