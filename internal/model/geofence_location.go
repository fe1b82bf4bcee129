package model

// GeofenceLocation is a circular perimeter gating clock-in/out. Table geofence_locations.
type GeofenceLocation struct {
	GeofenceID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"geofence_id"`
	CompanyID    string  `gorm:"type:uuid;not null"                             json:"company_id"`
	Name         string  `gorm:"type:varchar(150);not null"                     json:"name"`
	Address      string  `gorm:"type:varchar(300)"                              json:"address,omitempty"`
	Latitude     float64 `gorm:"not null"                                       json:"latitude"`
	Longitude    float64 `gorm:"not null"                                       json:"longitude"`
	RadiusMeters float64 `gorm:"not null;default:100"                           json:"radius_meters"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (GeofenceLocation) TableName() string { return "geofence_locations" }
