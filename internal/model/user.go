package model

import "time"

// User is an account record. Table users.
type User struct {
	UserID         string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	FullName       string     `gorm:"type:varchar(150);not null"                     json:"full_name"`
	PasswordHash   string     `gorm:"type:varchar(255);not null"                     json:"-"`
	Phone          string     `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	CompanyID      *string    `gorm:"type:uuid"                                      json:"company_id,omitempty"`
	DepartmentID   *string    `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	EmployeeID     string     `gorm:"type:varchar(50)"                               json:"employee_id,omitempty"`
	JobRole        string     `gorm:"type:varchar(20);not null;default:'employee'"   json:"job_role"` // owner | admin | manager | employee
	HourlyRate     float64    `gorm:"type:numeric(10,2);not null;default:0"          json:"hourly_rate"`
	HireDate       *time.Time `gorm:"type:date"                                      json:"hire_date,omitempty"`
	PTOBalance     float64    `gorm:"column:pto_balance;type:numeric(7,2);not null;default:0" json:"pto_balance"`
	IsCompanyAdmin bool       `gorm:"not null;default:false"                         json:"is_company_admin"`
	IsActive       bool       `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
