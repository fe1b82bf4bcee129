package dto

// ── schedule module DTOs ──

// CreateScheduleRequest assigns a shift to an employee.
type CreateScheduleRequest struct {
	UserEmail string  `json:"user_email" binding:"required,email"`
	Date      string  `json:"date"       binding:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string  `json:"end_time"   binding:"required,datetime=15:04"`
	ProjectID *string `json:"project_id" binding:"omitempty,uuid"`
	Notes     string  `json:"notes"      binding:"omitempty,max=2000"`
}

// ScheduleListRequest lists shifts in a date range.
type ScheduleListRequest struct {
	From      string `form:"from"       binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to"         binding:"omitempty,datetime=2006-01-02"`
	UserEmail string `form:"user_email" binding:"omitempty,email"`
}

// ScheduleResponse is the shift view.
type ScheduleResponse struct {
	ID          string `json:"id"`
	UserEmail   string `json:"user_email"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	ProjectID   string `json:"project_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
