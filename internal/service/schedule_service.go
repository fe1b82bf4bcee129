package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
)

// ── schedule module errors ──

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrShiftOrder       = errors.New("shift end must be after start")
)

// ScheduleService manages admin-assigned shifts.
type ScheduleService interface {
	Create(ctx context.Context, companyID string, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	List(ctx context.Context, companyID string, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error)
	// ListMine lists only the shifts assigned to the given employee.
	ListMine(ctx context.Context, companyID, userEmail string, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Create(ctx context.Context, companyID string, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if req.EndTime <= req.StartTime {
		return nil, fmt.Errorf("%w: %s to %s", ErrShiftOrder, req.StartTime, req.EndTime)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	schedule := &model.Schedule{
		CompanyID: companyID,
		UserEmail: req.UserEmail,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ProjectID: req.ProjectID,
		Notes:     req.Notes,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("create schedule failed", zap.Error(err))
		return nil, err
	}

	return toScheduleResponse(schedule), nil
}

func (s *scheduleService) List(ctx context.Context, companyID string, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	schedules, err := s.repo.Schedule.List(ctx, companyID, from, to, req.UserEmail)
	if err != nil {
		s.logger.Error("list schedules failed", zap.Error(err))
		return nil, err
	}

	return toScheduleResponses(schedules), nil
}

func (s *scheduleService) ListMine(ctx context.Context, companyID, userEmail string, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	schedules, err := s.repo.Schedule.List(ctx, companyID, from, to, userEmail)
	if err != nil {
		s.logger.Error("list own schedules failed", zap.String("user_email", userEmail), zap.Error(err))
		return nil, err
	}

	return toScheduleResponses(schedules), nil
}

func (s *scheduleService) Delete(ctx context.Context, companyID, id string) error {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("query schedule failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if schedule.CompanyID != companyID {
		return ErrScheduleNotFound
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("delete schedule failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

// parseDateRange converts optional "2006-01-02" bounds into time pointers.
func parseDateRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from date: %w", err)
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to date: %w", err)
		}
		to = &t
	}
	return from, to, nil
}

func toScheduleResponse(sc *model.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:        sc.ScheduleID,
		UserEmail: sc.UserEmail,
		Date:      sc.Date.Format("2006-01-02"),
		StartTime: sc.StartTime,
		EndTime:   sc.EndTime,
		Notes:     sc.Notes,
	}
	if sc.ProjectID != nil {
		resp.ProjectID = *sc.ProjectID
	}
	if sc.Project != nil {
		resp.ProjectName = sc.Project.Name
	}
	return resp
}

func toScheduleResponses(schedules []model.Schedule) []dto.ScheduleResponse {
	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, *toScheduleResponse(&schedules[i]))
	}
	return result
}
