package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	ticketUsecases "turnero/internal/application/ticket/usecases"
	"turnero/internal/infrastructure/auth"
	"turnero/internal/infrastructure/cache"
	"turnero/internal/infrastructure/config"
	"turnero/internal/infrastructure/email"
	"turnero/internal/infrastructure/metrics"
	"turnero/internal/infrastructure/permission"
	"turnero/internal/infrastructure/ratelimit"
	"turnero/internal/infrastructure/receipt"
	"turnero/internal/infrastructure/services"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/shared/logger"
)

const redisPingTimeout = 5 * time.Second

// initInfrastructure sets up Redis, repositories, auth services, receipts,
// metrics and the middlewares built on top of them.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	redisClient, err := initRedis(cfg, c.log)
	if err != nil {
		return err
	}
	c.redis = redisClient

	c.repos = newRepositories(c.db, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	c.metrics = metrics.New()
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.captchas = cache.NewCaptchaStore(redisClient, time.Duration(cfg.Auth.Captcha.TTLSeconds)*time.Second)
	c.sessions = cache.NewSessionStore(redisClient)

	store, err := receipt.NewLocalStore(cfg.Receipt.Dir)
	if err != nil {
		return err
	}
	c.receipts = store
	c.renderer = receipt.NewPDFRenderer(cfg.Receipt.Title)
	c.mailer = newMailer(cfg, c.log)

	c.allocator = services.NewSequenceAllocator(c.db, cfg.Ticket.Sequence, nil, c.metrics, c.log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.sessions, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		c.submitLimiter = middleware.NewRateLimiter(limiter, "submit", cfg.RateLimit.SubmitPerMinute, c.log)
		c.loginLimiter = middleware.NewRateLimiter(limiter, "login", cfg.RateLimit.LoginPerMinute, c.log)
	} else {
		c.log.Warnw("rate limiting is disabled")
	}

	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

func newMailer(cfg *config.Config, log logger.Interface) ticketUsecases.ReceiptMailer {
	if !cfg.Email.Enabled {
		log.Infow("email delivery disabled, receipts will not be mailed")
		return email.NoopEmailService{}
	}
	return email.NewSMTPEmailService(cfg.Email)
}
