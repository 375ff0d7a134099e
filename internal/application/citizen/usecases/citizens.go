package usecases

import (
	"context"
	"fmt"
	"strings"

	"turnero/internal/application/citizen/dto"
	"turnero/internal/domain/citizen"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type ListCitizensQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListCitizensResult struct {
	Citizens []*dto.CitizenDTO
	Total    int64
	Page     int
	PageSize int
}

type UpdateCitizenCommand struct {
	CitizenID       uint
	FullName        string
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	Landline        string
	Mobile          string
	Email           string
}

// CitizenService groups the admin operations on registered citizens.
type CitizenService struct {
	citizenRepo citizen.Repository
	logger      logger.Interface
}

func NewCitizenService(citizenRepo citizen.Repository, logger logger.Interface) *CitizenService {
	return &CitizenService{
		citizenRepo: citizenRepo,
		logger:      logger,
	}
}

func (s *CitizenService) List(ctx context.Context, query ListCitizensQuery) (*ListCitizensResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	list, total, err := s.citizenRepo.List(ctx, citizen.ListFilter{
		Search:   strings.TrimSpace(query.Search),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		s.logger.Errorw("failed to list citizens", "error", err)
		return nil, errors.NewInternalError("failed to list citizens")
	}

	return &ListCitizensResult{
		Citizens: dto.ToCitizenDTOs(list),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

func (s *CitizenService) Get(ctx context.Context, id uint) (*dto.CitizenDTO, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCitizenDTO(c), nil
}

// Update replaces the names and contact data. The national ID is immutable.
func (s *CitizenService) Update(ctx context.Context, cmd UpdateCitizenCommand) (*dto.CitizenDTO, error) {
	c, err := s.load(ctx, cmd.CitizenID)
	if err != nil {
		return nil, err
	}

	profile := citizen.Profile{
		NationalID:      c.NationalID(),
		FullName:        cmd.FullName,
		FirstName:       cmd.FirstName,
		PaternalSurname: cmd.PaternalSurname,
		MaternalSurname: cmd.MaternalSurname,
		Landline:        cmd.Landline,
		Mobile:          cmd.Mobile,
		Email:           cmd.Email,
	}
	if fields := validateProfile(profile); len(fields) > 0 {
		return nil, errors.NewFieldValidationError("the submitted data is not valid", fields)
	}

	if err := c.UpdateProfile(normalizeProfile(profile)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.citizenRepo.Update(ctx, c); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		s.logger.Errorw("failed to update citizen", "citizen_id", cmd.CitizenID, "error", err)
		return nil, errors.NewInternalError("failed to update citizen")
	}

	s.logger.Infow("citizen updated", "citizen_id", c.ID())
	return dto.ToCitizenDTO(c), nil
}

// Delete removes a citizen that owns no tickets.
func (s *CitizenService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.NewValidationError("citizen ID is required")
	}
	if err := s.citizenRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		s.logger.Errorw("failed to delete citizen", "citizen_id", id, "error", err)
		return errors.NewInternalError("failed to delete citizen")
	}
	s.logger.Infow("citizen deleted", "citizen_id", id)
	return nil
}

func (s *CitizenService) load(ctx context.Context, id uint) (*citizen.Citizen, error) {
	if id == 0 {
		return nil, errors.NewValidationError("citizen ID is required")
	}
	c, err := s.citizenRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get citizen", "citizen_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load citizen")
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("citizen %d not found", id))
	}
	return c, nil
}
