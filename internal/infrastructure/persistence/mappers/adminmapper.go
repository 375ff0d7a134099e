package mappers

import (
	"turnero/internal/domain/admin"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/authorization"
)

// AdminMapper converts between admin entities and persistence models
type AdminMapper interface {
	ToEntity(model *models.AdminModel) (*admin.Admin, error)
	ToModel(entity *admin.Admin) *models.AdminModel
}

type AdminMapperImpl struct{}

func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

func (m *AdminMapperImpl) ToEntity(model *models.AdminModel) (*admin.Admin, error) {
	if model == nil {
		return nil, nil
	}

	return admin.ReconstructAdmin(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.FullName,
		authorization.ParseAdminRole(model.Role),
		model.Active,
		model.LastAccessAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *AdminMapperImpl) ToModel(entity *admin.Admin) *models.AdminModel {
	if entity == nil {
		return nil
	}

	return &models.AdminModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		FullName:     entity.FullName(),
		Role:         entity.Role().String(),
		Active:       entity.IsActive(),
		LastAccessAt: entity.LastAccessAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
