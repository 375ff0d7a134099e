package mappers

import (
	"turnero/internal/domain/citizen"
	"turnero/internal/infrastructure/persistence/models"
)

// CitizenMapper converts between citizen entities and persistence models
type CitizenMapper interface {
	ToEntity(model *models.CitizenModel) (*citizen.Citizen, error)
	ToModel(entity *citizen.Citizen) *models.CitizenModel
}

type CitizenMapperImpl struct{}

func NewCitizenMapper() CitizenMapper {
	return &CitizenMapperImpl{}
}

func (m *CitizenMapperImpl) ToEntity(model *models.CitizenModel) (*citizen.Citizen, error) {
	if model == nil {
		return nil, nil
	}

	return citizen.ReconstructCitizen(model.ID, citizen.Profile{
		NationalID:      model.NationalID,
		FullName:        model.FullName,
		FirstName:       model.FirstName,
		PaternalSurname: model.PaternalSurname,
		MaternalSurname: model.MaternalSurname,
		Landline:        model.Landline,
		Mobile:          model.Mobile,
		Email:           model.Email,
	}, model.RegisteredBy, model.CreatedAt, model.UpdatedAt)
}

func (m *CitizenMapperImpl) ToModel(entity *citizen.Citizen) *models.CitizenModel {
	if entity == nil {
		return nil
	}

	p := entity.Profile()
	return &models.CitizenModel{
		ID:              entity.ID(),
		NationalID:      p.NationalID,
		FullName:        p.FullName,
		FirstName:       p.FirstName,
		PaternalSurname: p.PaternalSurname,
		MaternalSurname: p.MaternalSurname,
		Landline:        p.Landline,
		Mobile:          p.Mobile,
		Email:           p.Email,
		RegisteredBy:    entity.RegisteredBy(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
