package model

import "time"

// Time off request types and statuses.
const (
	TimeOffTypePTO    = "pto"
	TimeOffTypeSick   = "sick"
	TimeOffTypeUnpaid = "unpaid"

	TimeOffStatusPending  = "pending"
	TimeOffStatusApproved = "approved"
	TimeOffStatusRejected = "rejected"
)

// TimeOffRequest is a leave request awaiting admin review. Table time_off_requests.
type TimeOffRequest struct {
	TimeOffRequestID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_off_request_id"`
	CompanyID        string    `gorm:"type:uuid;not null"                             json:"company_id"`
	UserEmail        string    `gorm:"type:varchar(255);not null"                     json:"user_email"`
	Type             string    `gorm:"type:varchar(20);not null;default:'pto'"        json:"type"`
	StartDate        time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate          time.Time `gorm:"type:date;not null"                             json:"end_date"`
	HoursRequested   float64   `gorm:"type:numeric(7,2);not null"                     json:"hours_requested"`
	Reason           string    `gorm:"type:text;not null;default:''"                  json:"reason"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	ReviewedBy       *string   `gorm:"type:varchar(255)"                              json:"reviewed_by,omitempty"`
	ReviewNotes      string    `gorm:"type:text"                                      json:"review_notes,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (TimeOffRequest) TableName() string { return "time_off_requests" }
