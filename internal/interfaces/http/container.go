package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ticketUsecases "turnero/internal/application/ticket/usecases"
	"turnero/internal/infrastructure/auth"
	"turnero/internal/infrastructure/cache"
	"turnero/internal/infrastructure/config"
	"turnero/internal/infrastructure/metrics"
	"turnero/internal/infrastructure/permission"
	"turnero/internal/infrastructure/receipt"
	"turnero/internal/infrastructure/services"
	"turnero/internal/interfaces/http/middleware"
	"turnero/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares of the HTTP service and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	submitLimiter        *middleware.RateLimiter
	loginLimiter         *middleware.RateLimiter

	// Infrastructure services
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	enforcer  *permission.Enforcer
	metrics   *metrics.Metrics
	captchas  *cache.CaptchaStore
	sessions  *cache.SessionStore
	receipts  *receipt.LocalStore
	renderer  *receipt.PDFRenderer
	mailer    ticketUsecases.ReceiptMailer
	allocator *services.SequenceAllocator
}

// NewContainer builds every component from cfg. The database must already be
// migrated.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, auth, receipts, metrics
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.ucs = newUseCases(c)

	// Section 3: Handlers
	c.hdlrs = newHandlers(c)

	return c, nil
}

// Shutdown releases connections owned by the container. The database
// connection belongs to the caller.
func (c *Container) Shutdown(_ context.Context) error {
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
