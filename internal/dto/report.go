package dto

// ── report module DTOs ──

// ReportRequest bounds a report or export by date range.
type ReportRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}

// ExportRequest adds the output format to the range.
type ExportRequest struct {
	From   string `form:"from"   binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to"     binding:"omitempty,datetime=2006-01-02"`
	Format string `form:"format,default=csv" binding:"omitempty,oneof=csv xlsx"`
}

// EmployeeHours is one row of the per-employee breakdown.
type EmployeeHours struct {
	UserEmail string  `json:"user_email"`
	FullName  string  `json:"full_name"`
	Hours     float64 `json:"hours"`
	Cost      float64 `json:"cost"`
}

// DepartmentHours is one row of the per-department breakdown.
type DepartmentHours struct {
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Hours        float64 `json:"hours"`
}

// ReportSummaryResponse aggregates hours and labor cost over a range.
type ReportSummaryResponse struct {
	From         string            `json:"from,omitempty"`
	To           string            `json:"to,omitempty"`
	TotalHours   float64           `json:"total_hours"`
	TotalCost    float64           `json:"total_cost"`
	EntryCount   int               `json:"entry_count"`
	ByEmployee   []EmployeeHours   `json:"by_employee"`
	ByDepartment []DepartmentHours `json:"by_department"`
}
