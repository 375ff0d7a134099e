package usecases

import (
	"context"
	"time"

	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
	ExpiresAt time.Time
}

// LogoutUseCase revokes the session until its token would have expired anyway.
type LogoutUseCase struct {
	sessions SessionRevoker
	now      func() time.Time
	logger   logger.Interface
}

func NewLogoutUseCase(sessions SessionRevoker, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, now: time.Now, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return errors.NewValidationError("session is required")
	}

	ttl := cmd.ExpiresAt.Sub(uc.now())
	if err := uc.sessions.Revoke(ctx, cmd.SessionID, ttl); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", cmd.SessionID, "error", err)
		return errors.NewInternalError("failed to log out")
	}

	uc.logger.Infow("admin logged out", "session_id", cmd.SessionID)
	return nil
}
