package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// TimeOffHandler serves time-off requests and reviews.
type TimeOffHandler struct {
	timeOffSvc service.TimeOffService
}

// NewTimeOffHandler creates a TimeOffHandler.
func NewTimeOffHandler(timeOffSvc service.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{timeOffSvc: timeOffSvc}
}

// Create submits a time-off request for the caller.
// POST /api/v1/time-off
func (h *TimeOffHandler) Create(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	request, err := h.timeOffSvc.Create(c.Request.Context(), companyID, email, &req)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}

	response.Created(c, request)
}

// ListMine lists the caller's own requests.
// GET /api/v1/time-off/mine
func (h *TimeOffHandler) ListMine(c *gin.Context) {
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	requests, err := h.timeOffSvc.ListMine(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": requests})
}

// List lists requests across the company.
// GET /api/v1/time-off
func (h *TimeOffHandler) List(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.TimeOffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	requests, err := h.timeOffSvc.List(c.Request.Context(), companyID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": requests})
}

// Review approves or rejects a pending request.
// PUT /api/v1/time-off/:id/review
func (h *TimeOffHandler) Review(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	var req dto.ReviewTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	request, err := h.timeOffSvc.Review(c.Request.Context(), companyID, email, c.Param("id"), &req)
	if err != nil {
		h.handleTimeOffError(c, err)
		return
	}

	response.OK(c, request)
}

func (h *TimeOffHandler) handleTimeOffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeOffNotFound):
		response.NotFound(c, 20001, "time off request not found")
	case errors.Is(err, service.ErrTimeOffReviewed):
		response.Conflict(c, 20002, "time off request already reviewed")
	case errors.Is(err, service.ErrTimeOffDateOrder):
		response.BadRequest(c, 20003, "end date must not be before start date")
	case errors.Is(err, service.ErrInsufficientPTO):
		response.UnprocessableEntity(c, 20004, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 20005, "employee not found")
	default:
		response.InternalError(c)
	}
}
