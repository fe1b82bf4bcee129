package dto

// ── invitation module DTOs ──

// InviteEmployeeRequest invites an employee by email.
type InviteEmployeeRequest struct {
	Email        string  `json:"email"         binding:"required,email"`
	FullName     string  `json:"full_name"     binding:"required,min=2,max=150"`
	Phone        string  `json:"phone"         binding:"omitempty,max=50"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	HourlyRate   float64 `json:"hourly_rate"   binding:"omitempty,gte=0"`
	JobRole      string  `json:"job_role"      binding:"omitempty,oneof=admin manager employee"`
}

// InvitationResponse is returned to the inviter; the link is not emailed.
type InvitationResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	JobRole    string `json:"job_role"`
	Status     string `json:"status"`
	InviteURL  string `json:"invite_url,omitempty"`
	ExpiresAt  string `json:"expires_at"`
	AcceptedAt string `json:"accepted_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// InvitationValidateResponse answers the public token check.
type InvitationValidateResponse struct {
	Valid       bool   `json:"valid"`
	Email       string `json:"email,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}
