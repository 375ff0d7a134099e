package usecases

import (
	"context"

	"turnero/internal/application/admin/dto"
	"turnero/internal/domain/admin"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type GetAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *GetAdminUseCase {
	return &GetAdminUseCase{adminRepo: adminRepo, logger: logger}
}

func (uc *GetAdminUseCase) Execute(ctx context.Context, adminID uint) (*dto.AdminDTO, error) {
	a, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		uc.logger.Errorw("failed to get admin", "admin_id", adminID, "error", err)
		return nil, errors.NewInternalError("failed to load admin")
	}
	if a == nil || !a.IsActive() {
		return nil, errors.NewNotFoundError("admin not found")
	}
	return dto.ToAdminDTO(a), nil
}
