package citizen

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/application/citizen/dto"
	"turnero/internal/application/citizen/usecases"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type CitizenService interface {
	List(ctx context.Context, query usecases.ListCitizensQuery) (*usecases.ListCitizensResult, error)
	Get(ctx context.Context, id uint) (*dto.CitizenDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateCitizenCommand) (*dto.CitizenDTO, error)
	Delete(ctx context.Context, id uint) error
}

// UpdateCitizenRequest replaces the contact data of a citizen. The national
// ID cannot be changed.
type UpdateCitizenRequest struct {
	FullName        string `json:"full_name"`
	FirstName       string `json:"first_name"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	Landline        string `json:"landline"`
	Mobile          string `json:"mobile"`
	Email           string `json:"email"`
}

type CitizenHandler struct {
	service CitizenService
	logger  logger.Interface
}

func NewCitizenHandler(service CitizenService, logger logger.Interface) *CitizenHandler {
	return &CitizenHandler{service: service, logger: logger}
}

// ListCitizens handles GET /api/admin/citizens
func (h *CitizenHandler) ListCitizens(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.service.List(c.Request.Context(), usecases.ListCitizensQuery{
		Search:   c.Query("q"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Citizens, result.Total, result.Page, result.PageSize)
}

// GetCitizen handles GET /api/admin/citizens/:id
func (h *CitizenHandler) GetCitizen(c *gin.Context) {
	citizenID, err := utils.ParseUintParam(c, "id", "citizen")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), citizenID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateCitizen handles PUT /api/admin/citizens/:id
func (h *CitizenHandler) UpdateCitizen(c *gin.Context) {
	citizenID, err := utils.ParseUintParam(c, "id", "citizen")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCitizenRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update citizen", "error", err, "citizen_id", citizenID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), usecases.UpdateCitizenCommand{
		CitizenID:       citizenID,
		FullName:        req.FullName,
		FirstName:       req.FirstName,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		Landline:        req.Landline,
		Mobile:          req.Mobile,
		Email:           req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Citizen updated successfully", result)
}

// DeleteCitizen handles DELETE /api/admin/citizens/:id
func (h *CitizenHandler) DeleteCitizen(c *gin.Context) {
	citizenID, err := utils.ParseUintParam(c, "id", "citizen")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), citizenID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
