package model

import "time"

// Company is the tenant record. Table companies.
type Company struct {
	CompanyID        string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"company_id"`
	Name             string     `gorm:"type:varchar(200);not null"                     json:"name"`
	Industry         string     `gorm:"type:varchar(100)"                              json:"industry,omitempty"`
	Address          string     `gorm:"type:varchar(300)"                              json:"address,omitempty"`
	Phone            string     `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	Email            string     `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Website          string     `gorm:"type:varchar(255)"                              json:"website,omitempty"`
	Timezone         string     `gorm:"type:varchar(64);not null;default:'UTC'"        json:"timezone"`
	SubscriptionPlan string     `gorm:"type:varchar(20);not null;default:'starter'"    json:"subscription_plan"` // starter | professional | enterprise
	OwnerEmail       string     `gorm:"type:varchar(255);not null"                     json:"owner_email"`
	TrialEndsAt      *time.Time `gorm:"type:date"                                      json:"trial_ends_at,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Company) TableName() string { return "companies" }
