package model

import "time"

// Invitation statuses.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusRevoked  = "revoked"
)

// Invitation is a pending employee invite. Table invitations.
// The invitation link is returned to the inviter; delivery is out of scope.
type Invitation struct {
	InvitationID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"invitation_id"`
	CompanyID       string     `gorm:"type:uuid;not null"                             json:"company_id"`
	Email           string     `gorm:"type:varchar(255);not null"                     json:"email"`
	FullName        string     `gorm:"type:varchar(150);not null"                     json:"full_name"`
	DepartmentID    *string    `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	HourlyRate      float64    `gorm:"type:numeric(10,2);not null;default:0"          json:"hourly_rate"`
	JobRole         string     `gorm:"type:varchar(20);not null;default:'employee'"   json:"job_role"`
	InvitationToken string     `gorm:"type:varchar(64);not null;uniqueIndex"          json:"invitation_token"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	ExpiresAt       time.Time  `gorm:"not null"                                       json:"expires_at"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Invitation) TableName() string { return "invitations" }
