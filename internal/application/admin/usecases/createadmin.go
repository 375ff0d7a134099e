package usecases

import (
	"context"
	"strings"

	"turnero/internal/application/admin/dto"
	"turnero/internal/domain/admin"
	"turnero/internal/shared/authorization"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type CreateAdminCommand struct {
	Username string
	Email    string
	FullName string
	Role     string
	Password string
}

type CreateAdminUseCase struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	logger    logger.Interface
}

func NewCreateAdminUseCase(adminRepo admin.Repository, hasher admin.PasswordHasher, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{adminRepo: adminRepo, hasher: hasher, logger: logger}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*dto.AdminDTO, error) {
	role := authorization.AdminRole(strings.TrimSpace(cmd.Role))
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", cmd.Role)
	}
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	exists, err := uc.adminRepo.ExistsByUsernameOrEmail(ctx, strings.TrimSpace(cmd.Username), email)
	if err != nil {
		uc.logger.Errorw("failed to check admin existence", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}
	if exists {
		return nil, errors.NewConflictError("username or email already in use")
	}

	a, err := admin.NewAdmin(cmd.Username, email, cmd.FullName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := a.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.adminRepo.Create(ctx, a); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create admin", "username", a.Username(), "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	uc.logger.Infow("admin created", "admin_id", a.ID(), "username", a.Username(), "role", role)
	return dto.ToAdminDTO(a), nil
}
