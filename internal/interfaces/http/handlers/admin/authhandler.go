package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/application/admin/dto"
	"turnero/internal/application/admin/usecases"
	"turnero/internal/shared/config"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type IssueCaptchaExecutor interface {
	Execute(ctx context.Context) (*dto.CaptchaDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type GetAdminExecutor interface {
	Execute(ctx context.Context, adminID uint) (*dto.AdminDTO, error)
}

type CreateAdminExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateAdminCommand) (*dto.AdminDTO, error)
}

type LoginRequest struct {
	Username      string `json:"username" validate:"required,max=50"`
	Password      string `json:"password" validate:"required,max=128"`
	CaptchaID     string `json:"captcha_id" validate:"required"`
	CaptchaAnswer string `json:"captcha" validate:"required"`
}

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=150"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// AuthHandler serves the admin panel session endpoints.
type AuthHandler struct {
	issueCaptchaUC IssueCaptchaExecutor
	loginUC        LoginExecutor
	logoutUC       LogoutExecutor
	getAdminUC     GetAdminExecutor
	createAdminUC  CreateAdminExecutor
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewAuthHandler(
	issueCaptchaUC IssueCaptchaExecutor,
	loginUC LoginExecutor,
	logoutUC LogoutExecutor,
	getAdminUC GetAdminExecutor,
	createAdminUC CreateAdminExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		issueCaptchaUC: issueCaptchaUC,
		loginUC:        loginUC,
		logoutUC:       logoutUC,
		getAdminUC:     getAdminUC,
		createAdminUC:  createAdminUC,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

// GetCaptcha handles GET /admin/captcha
func (h *AuthHandler) GetCaptcha(c *gin.Context) {
	result, err := h.issueCaptchaUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:      req.Username,
		Password:      req.Password,
		CaptchaID:     req.CaptchaID,
		CaptchaAnswer: req.CaptchaAnswer,
		IPAddress:     c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.AccessToken, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"admin":        result.Admin,
		"access_token": result.AccessToken,
		"expires_at":   result.ExpiresAt,
		"expires_in":   result.ExpiresIn,
	})
}

// Logout handles POST /admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, err := utils.GetIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{
		SessionID: identity.SessionID,
		ExpiresAt: identity.ExpiresAt,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

// Me handles GET /admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := utils.GetIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAdminUC.Execute(c.Request.Context(), identity.AdminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAdmin handles POST /api/admin/admins
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAdminUC.Execute(c.Request.Context(), usecases.CreateAdminCommand{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if identity, err := utils.GetIdentity(c); err == nil {
		h.logger.Infow("admin account created", "admin_id", result.ID, "created_by", identity.AdminID)
	}

	utils.CreatedResponse(c, result, "Admin created successfully")
}
