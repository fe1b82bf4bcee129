package model

import "time"

// Preregistration statuses.
const (
	PreregStatusPending   = "pending"
	PreregStatusActivated = "activated"
)

// PreregisteredEmployee holds employment details entered by an admin before
// the employee has an account; activated when the invite is accepted,
// table preregistered_employees
type PreregisteredEmployee struct {
	PreregisteredID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"preregistered_id"`
	CompanyID       string     `gorm:"type:uuid;not null"                             json:"company_id"`
	Email           string     `gorm:"type:varchar(255);not null"                     json:"email"`
	FullName        string     `gorm:"type:varchar(150);not null"                     json:"full_name"`
	Phone           string     `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	DepartmentID    *string    `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	HourlyRate      float64    `gorm:"type:numeric(10,2);not null;default:0"          json:"hourly_rate"`
	HireDate        *time.Time `gorm:"type:date"                                      json:"hire_date,omitempty"`
	PTOBalance      float64    `gorm:"column:pto_balance;type:numeric(7,2);not null;default:0" json:"pto_balance"`
	JobRole         string     `gorm:"type:varchar(20);not null;default:'employee'"   json:"job_role"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel
}

// TableName sets the table name.
func (PreregisteredEmployee) TableName() string { return "preregistered_employees" }
