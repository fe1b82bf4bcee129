package model

import "time"

// Schedule is an admin-assigned shift. Table schedules.
type Schedule struct {
	ScheduleID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	CompanyID  string    `gorm:"type:uuid;not null"                             json:"company_id"`
	UserEmail  string    `gorm:"type:varchar(255);not null"                     json:"user_email"`
	Date       time.Time `gorm:"type:date;not null"                             json:"date"`
	StartTime  string    `gorm:"type:varchar(5);not null"                       json:"start_time"` // "HH:MM"
	EndTime    string    `gorm:"type:varchar(5);not null"                       json:"end_time"`   // "HH:MM"
	ProjectID  *string   `gorm:"type:uuid"                                      json:"project_id,omitempty"`
	Notes      string    `gorm:"type:text;not null;default:''"                  json:"notes"`
	BaseModel

	Project *Project `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
}

// TableName sets the table name.
func (Schedule) TableName() string { return "schedules" }
