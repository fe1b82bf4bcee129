package dto

// ── time off module DTOs ──

// CreateTimeOffRequest submits a leave request.
type CreateTimeOffRequest struct {
	Type           string  `json:"type"            binding:"required,oneof=pto sick unpaid"`
	StartDate      string  `json:"start_date"      binding:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date"        binding:"required,datetime=2006-01-02"`
	HoursRequested float64 `json:"hours_requested" binding:"required,gt=0"`
	Reason         string  `json:"reason"          binding:"omitempty,max=2000"`
}

// ReviewTimeOffRequest approves or rejects a pending request.
type ReviewTimeOffRequest struct {
	Status      string `json:"status"       binding:"required,oneof=approved rejected"`
	ReviewNotes string `json:"review_notes" binding:"omitempty,max=2000"`
}

// TimeOffListRequest filters the request list.
type TimeOffListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// TimeOffResponse is the request view.
type TimeOffResponse struct {
	ID             string  `json:"id"`
	UserEmail      string  `json:"user_email"`
	Type           string  `json:"type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	HoursRequested float64 `json:"hours_requested"`
	Reason         string  `json:"reason,omitempty"`
	Status         string  `json:"status"`
	ReviewedBy     string  `json:"reviewed_by,omitempty"`
	ReviewNotes    string  `json:"review_notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
