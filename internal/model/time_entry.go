package model

import "time"

// Time entry status values.
const (
	EntryStatusPending  = "pending"
	EntryStatusApproved = "approved"
	EntryStatusRejected = "rejected"
)

// TimeEntry is one clock session. Table time_entries.
// An entry with a nil ClockOut is an open session; at most one open session
// may exist per user_email (enforced best-effort by the clock service and
// backstopped by a partial unique index).
type TimeEntry struct {
	TimeEntryID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_entry_id"`
	CompanyID            string     `gorm:"type:uuid;not null"                             json:"company_id"`
	UserEmail            string     `gorm:"type:varchar(255);not null;index"               json:"user_email"`
	ClockIn              time.Time  `gorm:"not null"                                       json:"clock_in"`
	ClockOut             *time.Time `json:"clock_out,omitempty"`
	BreakDurationMinutes int        `gorm:"not null;default:0"                             json:"break_duration_minutes"`
	TotalHours           *float64   `gorm:"type:numeric(7,2)"                              json:"total_hours,omitempty"`
	Latitude             *float64   `json:"latitude,omitempty"`
	Longitude            *float64   `json:"longitude,omitempty"`
	ProjectID            *string    `gorm:"type:uuid"                                      json:"project_id,omitempty"`
	Notes                string     `gorm:"type:text;not null;default:''"                  json:"notes"`
	Status               string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	Project *Project `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
}

// TableName sets the table name.
func (TimeEntry) TableName() string { return "time_entries" }

// IsOpen reports whether the session has not been clocked out yet.
func (e *TimeEntry) IsOpen() bool { return e.ClockOut == nil }
