package usecases

import (
	"context"
	"time"

	"turnero/internal/infrastructure/auth"
	"turnero/internal/shared/authorization"
)

type CaptchaStore interface {
	Save(ctx context.Context, captchaID, answer string) error
	Consume(ctx context.Context, captchaID string) (string, error)
	TTL() time.Duration
}

type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
}

type TokenIssuer interface {
	Generate(adminID uint, username string, role authorization.AdminRole, sessionID string) (*auth.AccessToken, error)
}
