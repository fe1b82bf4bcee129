package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

// GeofenceHandler serves geofence CRUD.
type GeofenceHandler struct {
	geofenceSvc service.GeofenceService
}

// NewGeofenceHandler creates a GeofenceHandler.
func NewGeofenceHandler(geofenceSvc service.GeofenceService) *GeofenceHandler {
	return &GeofenceHandler{geofenceSvc: geofenceSvc}
}

// List lists the company's geofences.
// GET /api/v1/geofences
func (h *GeofenceHandler) List(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.GeofenceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	fences, err := h.geofenceSvc.List(c.Request.Context(), companyID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": fences})
}

// Get returns one geofence.
// GET /api/v1/geofences/:id
func (h *GeofenceHandler) Get(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	fence, err := h.geofenceSvc.GetByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		h.handleGeofenceError(c, err)
		return
	}

	response.OK(c, fence)
}

// Create adds a geofence.
// POST /api/v1/geofences
func (h *GeofenceHandler) Create(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateGeofenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	fence, err := h.geofenceSvc.Create(c.Request.Context(), companyID, &req)
	if err != nil {
		h.handleGeofenceError(c, err)
		return
	}

	response.Created(c, fence)
}

// Update edits a geofence.
// PUT /api/v1/geofences/:id
func (h *GeofenceHandler) Update(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.UpdateGeofenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	fence, err := h.geofenceSvc.Update(c.Request.Context(), companyID, c.Param("id"), &req)
	if err != nil {
		h.handleGeofenceError(c, err)
		return
	}

	response.OK(c, fence)
}

// Delete removes a geofence.
// DELETE /api/v1/geofences/:id
func (h *GeofenceHandler) Delete(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	if err := h.geofenceSvc.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		h.handleGeofenceError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *GeofenceHandler) handleGeofenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGeofenceNotFound):
		response.NotFound(c, 16001, "geofence not found")
	default:
		response.InternalError(c)
	}
}
