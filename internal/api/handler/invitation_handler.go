package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// InvitationHandler serves employee invitations.
type InvitationHandler struct {
	invitationSvc service.InvitationService
}

// NewInvitationHandler creates an InvitationHandler.
func NewInvitationHandler(invitationSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationSvc: invitationSvc}
}

// Invite sends a join invitation to an email address.
// POST /api/v1/invitations
func (h *InvitationHandler) Invite(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.InviteEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	inv, err := h.invitationSvc.Invite(c.Request.Context(), companyID, &req)
	if err != nil {
		h.handleInvitationError(c, err)
		return
	}

	response.Created(c, inv)
}

// ListPending lists unexpired pending invitations.
// GET /api/v1/invitations
func (h *InvitationHandler) ListPending(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	invs, err := h.invitationSvc.ListPending(c.Request.Context(), companyID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": invs})
}

// Validate is the public token check behind the join page.
// GET /api/v1/invitations/validate/:token
func (h *InvitationHandler) Validate(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.BadRequest(c, 10001, "token required")
		return
	}

	result, err := h.invitationSvc.Validate(c.Request.Context(), token)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Revoke cancels a pending invitation.
// DELETE /api/v1/invitations/:id
func (h *InvitationHandler) Revoke(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	if err := h.invitationSvc.Revoke(c.Request.Context(), companyID, c.Param("id")); err != nil {
		h.handleInvitationError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *InvitationHandler) handleInvitationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvitationNotFound):
		response.NotFound(c, 21001, "invitation not found")
	case errors.Is(err, service.ErrInvitationSettled):
		response.Conflict(c, 21002, "invitation already accepted or revoked")
	case errors.Is(err, service.ErrAlreadyInvited):
		response.Conflict(c, 21003, "a pending invitation already exists for this email")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 21004, "email already registered")
	default:
		response.InternalError(c)
	}
}
