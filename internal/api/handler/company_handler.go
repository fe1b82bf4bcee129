package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// CompanyHandler serves company setup and settings.
type CompanyHandler struct {
	companySvc service.CompanyService
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(companySvc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

// Setup creates a company for a caller who does not have one yet.
// POST /api/v1/company/setup
func (h *CompanyHandler) Setup(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	company, err := h.companySvc.Setup(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleCompanyError(c, err)
		return
	}

	response.Created(c, company)
}

// Get returns the caller's company.
// GET /api/v1/company
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	company, err := h.companySvc.Get(c.Request.Context(), companyID)
	if err != nil {
		h.handleCompanyError(c, err)
		return
	}

	response.OK(c, company)
}

// Update changes company settings.
// PUT /api/v1/company
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	company, err := h.companySvc.Update(c.Request.Context(), companyID, &req)
	if err != nil {
		h.handleCompanyError(c, err)
		return
	}

	response.OK(c, company)
}

func (h *CompanyHandler) handleCompanyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		response.NotFound(c, 12001, "company not found")
	case errors.Is(err, service.ErrAlreadyHasCompany):
		response.Conflict(c, 12002, "user already belongs to a company")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12003, "user not found")
	default:
		response.InternalError(c)
	}
}
