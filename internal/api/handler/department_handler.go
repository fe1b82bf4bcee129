package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// DepartmentHandler serves department CRUD.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// List lists the company's departments.
// GET /api/v1/departments
func (h *DepartmentHandler) List(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.DepartmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	depts, err := h.deptSvc.List(c.Request.Context(), companyID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// Get returns one department.
// GET /api/v1/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// Create adds a department.
// POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.Created(c, dept)
}

// Update edits a department.
// PUT /api/v1/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// Delete deactivates a department.
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	if err := h.deptSvc.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 13001, "department not found")
	default:
		response.InternalError(c)
	}
}
