package dto

// ── timesheet module DTOs ──

// TimesheetListRequest filters the admin timesheet table.
type TimesheetListRequest struct {
	UserEmail string `form:"user_email" binding:"omitempty,email"`
	Status    string `form:"status"     binding:"omitempty,oneof=pending approved rejected"`
	From      string `form:"from"       binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to"         binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=50" binding:"omitempty,min=1,max=500"`
}

// UpdateTimeEntryRequest is the admin edit of a persisted entry.
// Changing the times or the break total recomputes total_hours.
type UpdateTimeEntryRequest struct {
	ClockIn              *string `json:"clock_in"               binding:"omitempty"`
	ClockOut             *string `json:"clock_out"              binding:"omitempty"`
	BreakDurationMinutes *int    `json:"break_duration_minutes" binding:"omitempty,gte=0"`
	Notes                *string `json:"notes"                  binding:"omitempty,max=2000"`
	Status               *string `json:"status"                 binding:"omitempty,oneof=pending approved rejected"`
}

// LiveStatusEntry is one currently clocked-in employee.
type LiveStatusEntry struct {
	UserEmail      string `json:"user_email"`
	FullName       string `json:"full_name,omitempty"`
	ClockIn        string `json:"clock_in"`
	ElapsedDisplay string `json:"elapsed_display"`
	ProjectName    string `json:"project_name,omitempty"`
}
