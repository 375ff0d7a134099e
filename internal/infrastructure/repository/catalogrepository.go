package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turnero/internal/domain/catalog"
	"turnero/internal/infrastructure/persistence/mappers"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
)

type CatalogRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *CatalogRepository) Create(ctx context.Context, e *catalog.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("catalog key already exists", e.Key())
		}
		return fmt.Errorf("failed to create catalog entry: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *CatalogRepository) Update(ctx context.Context, e *catalog.Entry) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CatalogEntryModel{}).
		Where("id = ? AND kind = ?", e.ID(), string(e.Kind())).
		Updates(map[string]any{
			"name":       e.Name(),
			"active":     e.IsActive(),
			"updated_at": e.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update catalog entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("catalog entry not found")
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, kind catalog.Kind, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("kind = ?", string(kind)).Delete(&models.CatalogEntryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete catalog entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("catalog entry not found")
	}
	return nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, kind catalog.Kind, id uint) (*catalog.Entry, error) {
	return r.first(ctx, "kind = ? AND id = ?", string(kind), id)
}

func (r *CatalogRepository) GetByKey(ctx context.Context, kind catalog.Kind, key string) (*catalog.Entry, error) {
	return r.first(ctx, "kind = ? AND entry_key = ?", string(kind), key)
}

func (r *CatalogRepository) first(ctx context.Context, query string, args ...any) (*catalog.Entry, error) {
	var model models.CatalogEntryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query catalog entry: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CatalogRepository) List(ctx context.Context, kind catalog.Kind, activeOnly bool) ([]*catalog.Entry, error) {
	var list []*models.CatalogEntryModel
	query := db.GetTxFromContext(ctx, r.db).Where("kind = ?", string(kind))
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog %s: %w", kind, err)
	}

	entries := make([]*catalog.Entry, 0, len(list))
	for _, model := range list {
		entry, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *CatalogRepository) Upsert(ctx context.Context, e *catalog.Entry) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "active", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert catalog entry: %w", err)
	}
	return nil
}
