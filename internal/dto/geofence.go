package dto

// ── geofence module DTOs ──

// CreateGeofenceRequest creates a geofenced site.
type CreateGeofenceRequest struct {
	Name         string  `json:"name"          binding:"required,min=2,max=150"`
	Address      string  `json:"address"       binding:"omitempty,max=300"`
	Latitude     float64 `json:"latitude"      binding:"required,gte=-90,lte=90"`
	Longitude    float64 `json:"longitude"     binding:"required,gte=-180,lte=180"`
	RadiusMeters float64 `json:"radius_meters" binding:"required,gt=0,lte=100000"`
}

// UpdateGeofenceRequest edits a geofenced site.
type UpdateGeofenceRequest struct {
	Name         *string  `json:"name"          binding:"omitempty,min=2,max=150"`
	Address      *string  `json:"address"       binding:"omitempty,max=300"`
	Latitude     *float64 `json:"latitude"      binding:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude"     binding:"omitempty,gte=-180,lte=180"`
	RadiusMeters *float64 `json:"radius_meters" binding:"omitempty,gt=0,lte=100000"`
	IsActive     *bool    `json:"is_active"`
}

// GeofenceListRequest is the geofence list query.
type GeofenceListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// GeofenceResponse is the geofence view.
type GeofenceResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}
