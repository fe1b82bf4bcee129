package dto

// ── employee module DTOs ──

// UpdateUserRequest updates an employee record (admin, or self for a subset).
type UpdateUserRequest struct {
	FullName     *string  `json:"full_name"     binding:"omitempty,min=2,max=150"`
	Phone        *string  `json:"phone"         binding:"omitempty,max=50"`
	DepartmentID *string  `json:"department_id" binding:"omitempty,uuid"`
	JobRole      *string  `json:"job_role"      binding:"omitempty,oneof=owner admin manager employee"`
	HourlyRate   *float64 `json:"hourly_rate"   binding:"omitempty,gte=0"`
	PTOBalance   *float64 `json:"pto_balance"   binding:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active"`
}

// UserListRequest is the employee list query.
type UserListRequest struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// PreregisterEmployeeRequest records an employee manually ahead of signup.
type PreregisterEmployeeRequest struct {
	Email        string  `json:"email"         binding:"required,email"`
	FullName     string  `json:"full_name"     binding:"required,min=2,max=150"`
	Phone        string  `json:"phone"         binding:"omitempty,max=50"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	HourlyRate   float64 `json:"hourly_rate"   binding:"omitempty,gte=0"`
	HireDate     string  `json:"hire_date"     binding:"omitempty,datetime=2006-01-02"`
	PTOBalance   float64 `json:"pto_balance"   binding:"omitempty,gte=0"`
	JobRole      string  `json:"job_role"      binding:"omitempty,oneof=admin manager employee"`
}

// UserResponse is a sanitized user view.
type UserResponse struct {
	ID             string              `json:"id"`
	Email          string              `json:"email"`
	FullName       string              `json:"full_name"`
	Phone          string              `json:"phone,omitempty"`
	CompanyID      string              `json:"company_id,omitempty"`
	EmployeeID     string              `json:"employee_id,omitempty"`
	JobRole        string              `json:"job_role"`
	HourlyRate     float64             `json:"hourly_rate"`
	HireDate       string              `json:"hire_date,omitempty"`
	PTOBalance     float64             `json:"pto_balance"`
	IsCompanyAdmin bool                `json:"is_company_admin"`
	IsActive       bool                `json:"is_active"`
	Department     *DepartmentResponse `json:"department,omitempty"`
}
