package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"turnero/internal/domain/admin"
	"turnero/internal/infrastructure/persistence/mappers"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type AdminRepository struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
	logger logger.Interface
}

func NewAdminRepository(db *gorm.DB, logger logger.Interface) *AdminRepository {
	return &AdminRepository{
		db:     db,
		mapper: mappers.NewAdminMapper(),
		logger: logger,
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username or email already in use")
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *AdminRepository) first(ctx context.Context, query string, args ...any) (*admin.Admin, error) {
	var model models.AdminModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query admin", "query", query, "error", err)
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AdminRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AdminModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return count > 0, nil
}

func (r *AdminRepository) UpdateLastAccess(ctx context.Context, a *admin.Admin) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AdminModel{}).
		Where("id = ?", a.ID()).
		UpdateColumn("last_access_at", a.LastAccessAt()).Error; err != nil {
		return fmt.Errorf("failed to update last access: %w", err)
	}
	return nil
}
