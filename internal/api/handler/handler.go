package handler

import "github.com/yasiralharfash/chronos/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Company    *CompanyHandler
	User       *UserHandler
	Department *DepartmentHandler
	Project    *ProjectHandler
	Geofence   *GeofenceHandler
	Clock      *ClockHandler
	Timesheet  *TimesheetHandler
	Schedule   *ScheduleHandler
	TimeOff    *TimeOffHandler
	Invitation *InvitationHandler
	Report     *ReportHandler
}

// NewHandler wires every handler to its service.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Company:    NewCompanyHandler(svc.Company),
		User:       NewUserHandler(svc.User),
		Department: NewDepartmentHandler(svc.Department),
		Project:    NewProjectHandler(svc.Project),
		Geofence:   NewGeofenceHandler(svc.Geofence),
		Clock:      NewClockHandler(svc.Clock),
		Timesheet:  NewTimesheetHandler(svc.Timesheet),
		Schedule:   NewScheduleHandler(svc.Schedule),
		TimeOff:    NewTimeOffHandler(svc.TimeOff),
		Invitation: NewInvitationHandler(svc.Invitation),
		Report:     NewReportHandler(svc.Report),
	}
}
