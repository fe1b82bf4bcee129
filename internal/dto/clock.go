package dto

// ── clock module DTOs ──
//
// Device location is acquired client-side; the client reports either a fix or
// its absence. Omitted coordinates mean "location unavailable", which blocks
// the transition only when active geofences are configured.

// ClockInRequest opens a new session.
type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"   binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude"  binding:"omitempty,gte=-180,lte=180"`
	ProjectID *string  `json:"project_id" binding:"omitempty,uuid"`
	Notes     string   `json:"notes"      binding:"omitempty,max=2000"`
}

// ClockOutRequest closes the open session.
type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"   binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude"  binding:"omitempty,gte=-180,lte=180"`
	ProjectID *string  `json:"project_id" binding:"omitempty,uuid"`
	Notes     string   `json:"notes"      binding:"omitempty,max=2000"`
}

// ClockStatusResponse is the session snapshot for the clock screen.
type ClockStatusResponse struct {
	State             string             `json:"state"` // clocked_out | clocked_in | on_break
	ElapsedDisplay    string             `json:"elapsed_display,omitempty"` // "H:MM:SS" since clock-in, cosmetic
	BreakTotalMinutes int                `json:"break_total_minutes"`
	Entry             *TimeEntryResponse `json:"entry,omitempty"`
}

// TimeEntryResponse is the persisted session view.
type TimeEntryResponse struct {
	ID                   string   `json:"id"`
	UserEmail            string   `json:"user_email"`
	ClockIn              string   `json:"clock_in"`
	ClockOut             string   `json:"clock_out,omitempty"`
	BreakDurationMinutes int      `json:"break_duration_minutes"`
	TotalHours           *float64 `json:"total_hours,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	ProjectID            string   `json:"project_id,omitempty"`
	ProjectName          string   `json:"project_name,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	Status               string   `json:"status"`
}
