package mappers

import (
	"fmt"

	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket entities and persistence models
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Level,
		model.Municipality,
		model.Subject,
		status,
		model.CitizenID,
		model.AttendedBy,
		model.AttendedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}

	return &models.TicketModel{
		ID:           entity.ID(),
		Number:       entity.Number(),
		Level:        entity.Level(),
		Municipality: entity.Municipality(),
		Subject:      entity.Subject(),
		Status:       entity.Status().String(),
		CitizenID:    entity.CitizenID(),
		AttendedBy:   entity.AttendedBy(),
		AttendedAt:   entity.AttendedAt(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToEntities(list []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
