package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// TimesheetHandler serves the timesheet table and entry edits.
type TimesheetHandler struct {
	timesheetSvc service.TimesheetService
}

// NewTimesheetHandler creates a TimesheetHandler.
func NewTimesheetHandler(timesheetSvc service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetSvc: timesheetSvc}
}

// List lists the company's time entries with filters.
// GET /api/v1/timesheets
func (h *TimesheetHandler) List(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.TimesheetListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	entries, total, err := h.timesheetSvc.List(c.Request.Context(), companyID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, entries, total, req.Page, req.PageSize)
}

// ListMine lists the caller's own entries regardless of role.
// GET /api/v1/timesheets/mine
func (h *TimesheetHandler) ListMine(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.TimesheetListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	entries, total, err := h.timesheetSvc.ListMine(c.Request.Context(), companyID, email, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, entries, total, req.Page, req.PageSize)
}

// Get returns one time entry.
// GET /api/v1/timesheets/:id
func (h *TimesheetHandler) Get(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	entry, err := h.timesheetSvc.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		h.handleTimesheetError(c, err)
		return
	}

	response.OK(c, entry)
}

// Update edits a persisted entry.
// PUT /api/v1/timesheets/:id
func (h *TimesheetHandler) Update(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	entry, err := h.timesheetSvc.Update(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		h.handleTimesheetError(c, err)
		return
	}

	response.OK(c, entry)
}

// LiveStatus lists employees currently on the clock.
// GET /api/v1/timesheets/live
func (h *TimesheetHandler) LiveStatus(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	entries, err := h.timesheetSvc.LiveStatus(c.Request.Context(), companyID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

func (h *TimesheetHandler) handleTimesheetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 18001, "time entry not found")
	case errors.Is(err, service.ErrEntryOpen):
		response.Conflict(c, 18002, "time entry is still open")
	case errors.Is(err, service.ErrEntryOrder):
		response.BadRequest(c, 18003, "clock out must be after clock in")
	default:
		response.InternalError(c)
	}
}
