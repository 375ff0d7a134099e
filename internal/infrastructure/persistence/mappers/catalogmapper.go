package mappers

import (
	"turnero/internal/domain/catalog"
	"turnero/internal/infrastructure/persistence/models"
)

// CatalogMapper converts between catalog entries and persistence models
type CatalogMapper interface {
	ToEntity(model *models.CatalogEntryModel) (*catalog.Entry, error)
	ToModel(entity *catalog.Entry) *models.CatalogEntryModel
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) ToEntity(model *models.CatalogEntryModel) (*catalog.Entry, error) {
	if model == nil {
		return nil, nil
	}

	return catalog.ReconstructEntry(
		model.ID,
		catalog.Kind(model.Kind),
		model.Key,
		model.Name,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CatalogMapperImpl) ToModel(entity *catalog.Entry) *models.CatalogEntryModel {
	if entity == nil {
		return nil
	}

	return &models.CatalogEntryModel{
		ID:        entity.ID(),
		Kind:      string(entity.Kind()),
		Key:       entity.Key(),
		Name:      entity.Name(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
