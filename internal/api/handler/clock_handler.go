package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// ClockHandler serves the clock-in/out workflow.
type ClockHandler struct {
	clockSvc service.ClockService
}

// NewClockHandler creates a ClockHandler.
func NewClockHandler(clockSvc service.ClockService) *ClockHandler {
	return &ClockHandler{clockSvc: clockSvc}
}

// Status returns the caller's current clock state.
// GET /api/v1/clock/status
func (h *ClockHandler) Status(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	status, err := h.clockSvc.Status(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, status)
}

// ClockIn opens a time entry after the geofence check.
// POST /api/v1/clock/in
func (h *ClockHandler) ClockIn(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	entry, err := h.clockSvc.ClockIn(c.Request.Context(), email, companyID, &req)
	if err != nil {
		h.handleClockError(c, err)
		return
	}

	response.Created(c, entry)
}

// ClockOut closes the caller's open entry.
// POST /api/v1/clock/out
func (h *ClockHandler) ClockOut(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	entry, err := h.clockSvc.ClockOut(c.Request.Context(), email, companyID, &req)
	if err != nil {
		h.handleClockError(c, err)
		return
	}

	response.OK(c, entry)
}

// StartBreak marks the open entry as on break.
// POST /api/v1/clock/break/start
func (h *ClockHandler) StartBreak(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	status, err := h.clockSvc.StartBreak(c.Request.Context(), email)
	if err != nil {
		h.handleClockError(c, err)
		return
	}

	response.OK(c, status)
}

// EndBreak accumulates the finished break into the open entry.
// POST /api/v1/clock/break/end
func (h *ClockHandler) EndBreak(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	status, err := h.clockSvc.EndBreak(c.Request.Context(), email)
	if err != nil {
		h.handleClockError(c, err)
		return
	}

	response.OK(c, status)
}

func (h *ClockHandler) handleClockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocationUnavailable):
		response.UnprocessableEntity(c, 17001, "device location required")
	case errors.Is(err, service.ErrGeofenceRejected):
		response.Forbidden(c, 17002, "not within an allowed clock-in location")
	case errors.Is(err, service.ErrInvalidTransition):
		response.Conflict(c, 17003, err.Error())
	default:
		response.InternalError(c)
	}
}
