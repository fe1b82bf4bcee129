package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Company       CompanyRepository
	User          UserRepository
	Department    DepartmentRepository
	Project       ProjectRepository
	Geofence      GeofenceRepository
	TimeEntry     TimeEntryRepository
	Schedule      ScheduleRepository
	TimeOff       TimeOffRepository
	Invitation    InvitationRepository
	Preregistered PreregisteredRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Company:       NewCompanyRepo(db),
		User:          NewUserRepo(db),
		Department:    NewDepartmentRepo(db),
		Project:       NewProjectRepo(db),
		Geofence:      NewGeofenceRepo(db),
		TimeEntry:     NewTimeEntryRepo(db),
		Schedule:      NewScheduleRepo(db),
		TimeOff:       NewTimeOffRepo(db),
		Invitation:    NewInvitationRepo(db),
		Preregistered: NewPreregisteredRepo(db),
	}
}
