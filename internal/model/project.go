package model

// Project status values.
const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

// Project is a billable work bucket time entries can reference. Table projects.
type Project struct {
	ProjectID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"project_id"`
	CompanyID   string `gorm:"type:uuid;not null"                             json:"company_id"`
	Name        string `gorm:"type:varchar(150);not null"                     json:"name"`
	Code        string `gorm:"type:varchar(30)"                               json:"code,omitempty"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	Status      string `gorm:"type:varchar(20);not null;default:'active'"     json:"status"` // active | archived
	SoftDeleteModel
}

// TableName sets the table name.
func (Project) TableName() string { return "projects" }
