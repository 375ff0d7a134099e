package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"turnero/internal/domain/citizen"
	"turnero/internal/infrastructure/persistence/mappers"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type CitizenRepository struct {
	db     *gorm.DB
	mapper mappers.CitizenMapper
	logger logger.Interface
}

func NewCitizenRepository(db *gorm.DB, logger logger.Interface) *CitizenRepository {
	return &CitizenRepository{
		db:     db,
		mapper: mappers.NewCitizenMapper(),
		logger: logger,
	}
}

func (r *CitizenRepository) Create(ctx context.Context, c *citizen.Citizen) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("citizen already registered", c.NationalID())
		}
		return fmt.Errorf("failed to create citizen: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CitizenRepository) Update(ctx context.Context, c *citizen.Citizen) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CitizenModel{}).
		Where("id = ?", model.ID).
		Select("full_name", "first_name", "paternal_surname", "maternal_surname", "landline", "mobile", "email", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update citizen: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("citizen not found")
	}
	return nil
}

// Delete removes a citizen. Citizens that still own tickets are kept.
func (r *CitizenRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var owned int64
	if err := tx.Model(&models.TicketModel{}).Where("citizen_id = ?", id).Count(&owned).Error; err != nil {
		return fmt.Errorf("failed to count citizen tickets: %w", err)
	}
	if owned > 0 {
		return apperrors.NewConflictError("citizen still has tickets", fmt.Sprintf("%d tickets", owned))
	}

	result := tx.Delete(&models.CitizenModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete citizen: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("citizen not found")
	}
	return nil
}

func (r *CitizenRepository) GetByID(ctx context.Context, id uint) (*citizen.Citizen, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CitizenRepository) GetByNationalID(ctx context.Context, nationalID string) (*citizen.Citizen, error) {
	return r.first(ctx, "national_id = ?", nationalID)
}

func (r *CitizenRepository) first(ctx context.Context, query string, args ...any) (*citizen.Citizen, error) {
	var model models.CitizenModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query citizen", "query", query, "error", err)
		return nil, fmt.Errorf("failed to query citizen: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CitizenRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*citizen.Citizen, error) {
	result := make(map[uint]*citizen.Citizen, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var list []*models.CitizenModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to load citizens: %w", err)
	}

	for _, model := range list {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result[entity.ID()] = entity
	}
	return result, nil
}

func (r *CitizenRepository) List(ctx context.Context, filter citizen.ListFilter) ([]*citizen.Citizen, int64, error) {
	var (
		list  []*models.CitizenModel
		total int64
	)
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CitizenModel{})

	if filter.Search != "" {
		pattern := db.Contains(filter.Search)
		like := "LIKE ? ESCAPE '" + db.LikeEscape + "'"
		query = query.Where("national_id "+like+" OR full_name "+like, pattern, pattern)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count citizens: %w", err)
	}

	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("full_name ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list citizens: %w", err)
	}

	entities := make([]*citizen.Citizen, 0, len(list))
	for _, model := range list {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}
	return entities, total, nil
}
