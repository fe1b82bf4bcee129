package service

import (
	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/config"
	"github.com/yasiralharfash/chronos/internal/repository"
	"github.com/yasiralharfash/chronos/pkg/jwt"
	"github.com/yasiralharfash/chronos/pkg/redis"
)

// Service bundles every business service.
type Service struct {
	Auth       AuthService
	Company    CompanyService
	User       UserService
	Department DepartmentService
	Project    ProjectService
	Geofence   GeofenceService
	Clock      ClockService
	Timesheet  TimesheetService
	Schedule   ScheduleService
	TimeOff    TimeOffService
	Invitation InvitationService
	Report     ReportService
}

// NewService wires all services.
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Company:    NewCompanyService(repo, logger),
		User:       NewUserService(repo, logger),
		Department: NewDepartmentService(repo, logger),
		Project:    NewProjectService(repo, logger),
		Geofence:   NewGeofenceService(repo, logger),
		Clock:      NewClockService(repo, logger),
		Timesheet:  NewTimesheetService(repo, logger),
		Schedule:   NewScheduleService(repo, logger),
		TimeOff:    NewTimeOffService(repo, logger),
		Invitation: NewInvitationService(cfg, repo, logger),
		Report:     NewReportService(repo, logger),
	}
}
