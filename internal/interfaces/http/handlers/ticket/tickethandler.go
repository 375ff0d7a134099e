package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnero/internal/application/ticket/usecases"
	"turnero/internal/shared/constants"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
	"turnero/internal/shared/utils"
)

type TicketHandler struct {
	submitTicketUC  usecases.SubmitTicketExecutor
	lookupPendingUC usecases.LookupPendingExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	searchTicketsUC usecases.SearchTicketsExecutor
	getTicketUC     usecases.GetTicketExecutor
	updateStatusUC  usecases.UpdateStatusExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	getStatsUC      usecases.GetTicketStatsExecutor
	listLimit       int
	logger          logger.Interface
}

func NewTicketHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	lookupPendingUC usecases.LookupPendingExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	searchTicketsUC usecases.SearchTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getStatsUC usecases.GetTicketStatsExecutor,
	listLimit int,
	logger logger.Interface,
) *TicketHandler {
	if listLimit <= 0 {
		listLimit = constants.DefaultTicketListLimit
	}
	return &TicketHandler{
		submitTicketUC:  submitTicketUC,
		lookupPendingUC: lookupPendingUC,
		listTicketsUC:   listTicketsUC,
		searchTicketsUC: searchTicketsUC,
		getTicketUC:     getTicketUC,
		updateStatusUC:  updateStatusUC,
		deleteTicketUC:  deleteTicketUC,
		getStatsUC:      getStatsUC,
		listLimit:       listLimit,
		logger:          logger,
	}
}

// SubmitTicket handles POST /api/tickets
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for submit ticket", "error", err, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Staff capturing a walk-in request are recorded on the citizen.
	var registeredBy uint
	if identity, err := utils.GetIdentity(c); err == nil {
		registeredBy = identity.AdminID
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), req.ToCommand(registeredBy))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket registered successfully")
}

// LookupPending handles GET /api/tickets/pending
func (h *TicketHandler) LookupPending(c *gin.Context) {
	query := usecases.LookupPendingQuery{
		NationalID: c.Query("national_id"),
		Number:     c.Query("number"),
	}
	if query.NationalID == "" || query.Number == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("national_id and number are required"))
		return
	}

	result, err := h.lookupPendingUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/admin/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		Status:       c.Query("status"),
		Municipality: c.Query("municipality"),
		Limit:        utils.ParseLimit(c, h.listLimit, h.listLimit),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SearchTickets handles GET /api/admin/tickets/search
func (h *TicketHandler) SearchTickets(c *gin.Context) {
	result, err := h.searchTicketsUC.Execute(c.Request.Context(), usecases.SearchTicketsQuery{Term: c.Query("q")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /api/admin/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /api/admin/tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity, err := utils.GetIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		TicketID:      ticketID,
		NewStatus:     req.Status,
		ActingAdminID: identity.AdminID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// DeleteTicket handles DELETE /api/admin/tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity, err := utils.GetIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:      ticketID,
		ActingAdminID: identity.AdminID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetStats handles GET /api/admin/stats
func (h *TicketHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
