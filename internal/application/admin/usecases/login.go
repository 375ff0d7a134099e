package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"turnero/internal/application/admin/dto"
	"turnero/internal/domain/admin"
	"turnero/internal/infrastructure/cache"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/id"
	"turnero/internal/shared/logger"
)

type LoginCommand struct {
	Username      string
	Password      string
	CaptchaID     string
	CaptchaAnswer string
	IPAddress     string
}

type LoginResult struct {
	Admin       *dto.AdminDTO
	AccessToken string
	ExpiresAt   time.Time
	ExpiresIn   int64
}

type LoginUseCase struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	captchas  CaptchaStore
	tokens    TokenIssuer
	logger    logger.Interface
}

func NewLoginUseCase(
	adminRepo admin.Repository,
	hasher admin.PasswordHasher,
	captchas CaptchaStore,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		captchas:  captchas,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	if err := uc.checkCaptcha(ctx, cmd.CaptchaID, cmd.CaptchaAnswer); err != nil {
		return nil, err
	}

	// Same message for unknown users, wrong passwords and disabled accounts.
	invalid := errors.NewUnauthorizedError("invalid username or password")

	a, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get admin", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if a == nil {
		uc.logger.Warnw("login for unknown admin", "username", username, "ip", cmd.IPAddress)
		return nil, invalid
	}
	if err := a.Authenticate(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("admin authentication failed", "admin_id", a.ID(), "ip", cmd.IPAddress, "reason", err)
		return nil, invalid
	}

	if err := uc.adminRepo.UpdateLastAccess(ctx, a); err != nil {
		uc.logger.Warnw("failed to record last access", "admin_id", a.ID(), "error", err)
	}

	sessionID, err := id.GenerateWithPrefix(id.PrefixSession, id.DefaultLength)
	if err != nil {
		uc.logger.Errorw("failed to generate session id", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	token, err := uc.tokens.Generate(a.ID(), a.Username(), a.Role(), sessionID)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "admin_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID(), "session_id", sessionID, "ip", cmd.IPAddress)

	return &LoginResult{
		Admin:       dto.ToAdminDTO(a),
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		ExpiresIn:   token.ExpiresIn,
	}, nil
}

// checkCaptcha consumes the challenge whatever the outcome, so every attempt
// needs a fresh one.
func (uc *LoginUseCase) checkCaptcha(ctx context.Context, captchaID, answer string) error {
	expected, err := uc.captchas.Consume(ctx, captchaID)
	if err != nil {
		if stderrors.Is(err, cache.ErrCaptchaNotFound) {
			return errors.NewFieldValidationError("captcha expired, request a new one", map[string]string{
				"captcha": "Captcha expired",
			})
		}
		uc.logger.Errorw("failed to read captcha", "error", err)
		return errors.NewInternalError("failed to log in")
	}

	if !strings.EqualFold(strings.TrimSpace(answer), expected) {
		return errors.NewFieldValidationError("incorrect captcha", map[string]string{
			"captcha": "Incorrect captcha",
		})
	}
	return nil
}
