package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/application/catalog/dto"
	"turnero/internal/application/catalog/usecases"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type CatalogService interface {
	List(ctx context.Context, kind string, activeOnly bool) ([]*dto.EntryDTO, error)
	Create(ctx context.Context, cmd usecases.CreateEntryCommand) (*dto.EntryDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateEntryCommand) (*dto.EntryDTO, error)
	Delete(ctx context.Context, kind string, id uint) error
}

type CreateEntryRequest struct {
	Key  string `json:"key" validate:"required,max=100"`
	Name string `json:"name" validate:"required,max=200"`
}

type UpdateEntryRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Active *bool  `json:"active" validate:"required"`
}

type CatalogHandler struct {
	service CatalogService
	logger  logger.Interface
}

func NewCatalogHandler(service CatalogService, logger logger.Interface) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

// ListActive handles GET /api/catalogs/:kind for the citizen form.
func (h *CatalogHandler) ListActive(c *gin.Context) {
	h.list(c, true)
}

// ListAll handles GET /api/admin/catalogs/:kind, inactive entries included.
func (h *CatalogHandler) ListAll(c *gin.Context) {
	h.list(c, false)
}

func (h *CatalogHandler) list(c *gin.Context, activeOnly bool) {
	result, err := h.service.List(c.Request.Context(), c.Param("kind"), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateEntry handles POST /api/admin/catalogs/:kind
func (h *CatalogHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create catalog entry", "error", err, "kind", c.Param("kind"))
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), usecases.CreateEntryCommand{
		Kind: c.Param("kind"),
		Key:  req.Key,
		Name: req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Catalog entry created successfully")
}

// UpdateEntry handles PUT /api/admin/catalogs/:kind/:id
func (h *CatalogHandler) UpdateEntry(c *gin.Context) {
	entryID, err := utils.ParseUintParam(c, "id", "catalog entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEntryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), usecases.UpdateEntryCommand{
		Kind:   c.Param("kind"),
		ID:     entryID,
		Name:   req.Name,
		Active: *req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Catalog entry updated successfully", result)
}

// DeleteEntry handles DELETE /api/admin/catalogs/:kind/:id
func (h *CatalogHandler) DeleteEntry(c *gin.Context) {
	entryID, err := utils.ParseUintParam(c, "id", "catalog entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("kind"), entryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
