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

// ── timesheet module errors ──

var (
	ErrEntryNotFound = errors.New("time entry not found")
	ErrEntryOpen     = errors.New("time entry is still open")
	ErrEntryOrder    = errors.New("clock out must be after clock in")
)

// TimesheetService is the admin view over persisted time entries: list,
// correct, approve or reject, and watch who is on the clock right now.
type TimesheetService interface {
	List(ctx context.Context, companyID string, req *dto.TimesheetListRequest) ([]dto.TimeEntryResponse, int64, error)
	ListMine(ctx context.Context, companyID, userEmail string, req *dto.TimesheetListRequest) ([]dto.TimeEntryResponse, int64, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.TimeEntryResponse, error)
	Update(ctx context.Context, companyID, id string, req *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error)
	// LiveStatus lists every employee currently clocked in.
	LiveStatus(ctx context.Context, companyID string) ([]dto.LiveStatusEntry, error)
}

type timesheetService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewTimesheetService creates a TimesheetService.
func NewTimesheetService(repo *repository.Repository, logger *zap.Logger) TimesheetService {
	return &timesheetService{repo: repo, logger: logger, now: time.Now}
}

func (s *timesheetService) List(ctx context.Context, companyID string, req *dto.TimesheetListRequest) ([]dto.TimeEntryResponse, int64, error) {
	return s.list(ctx, companyID, req.UserEmail, req)
}

func (s *timesheetService) ListMine(ctx context.Context, companyID, userEmail string, req *dto.TimesheetListRequest) ([]dto.TimeEntryResponse, int64, error) {
	return s.list(ctx, companyID, userEmail, req)
}

func (s *timesheetService) list(ctx context.Context, companyID, userEmail string, req *dto.TimesheetListRequest) ([]dto.TimeEntryResponse, int64, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, 0, err
	}
	if to != nil {
		// inclusive end date: advance the exclusive upper bound one day
		t := to.AddDate(0, 0, 1)
		to = &t
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	entries, total, err := s.repo.TimeEntry.List(ctx, companyID, repository.TimeEntryFilter{
		UserEmail: userEmail,
		Status:    req.Status,
		From:      from,
		To:        to,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
	})
	if err != nil {
		s.logger.Error("list time entries failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toTimeEntryResponse(&entries[i]))
	}

	return result, total, nil
}

func (s *timesheetService) GetByID(ctx context.Context, companyID, id string) (*dto.TimeEntryResponse, error) {
	entry, err := s.getCompanyEntry(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry), nil
}

// Update applies an admin correction. Edits to the times or the break total
// recompute total_hours with the same clamp-and-round rules the clock-out
// path uses; an open entry only accepts notes and break edits.
func (s *timesheetService) Update(ctx context.Context, companyID, id string, req *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	entry, err := s.getCompanyEntry(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	recompute := false

	if req.ClockIn != nil {
		t, err := time.Parse(time.RFC3339, *req.ClockIn)
		if err != nil {
			return nil, fmt.Errorf("invalid clock_in: %w", err)
		}
		entry.ClockIn = t
		recompute = true
	}
	if req.ClockOut != nil {
		if entry.ClockOut == nil {
			return nil, fmt.Errorf("%w: clock the employee out first", ErrEntryOpen)
		}
		t, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			return nil, fmt.Errorf("invalid clock_out: %w", err)
		}
		entry.ClockOut = &t
		recompute = true
	}
	if req.BreakDurationMinutes != nil {
		entry.BreakDurationMinutes = *req.BreakDurationMinutes
		recompute = true
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}

	if recompute && entry.ClockOut != nil {
		if !entry.ClockOut.After(entry.ClockIn) {
			return nil, ErrEntryOrder
		}
		total := round2(ComputeWorkedHours(entry.ClockIn, *entry.ClockOut, entry.BreakDurationMinutes))
		entry.TotalHours = &total
	}

	if err := s.repo.TimeEntry.Update(ctx, entry); err != nil {
		s.logger.Error("update time entry failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("time entry updated",
		zap.String("id", id),
		zap.String("status", entry.Status),
		zap.Bool("recomputed", recompute))

	return toTimeEntryResponse(entry), nil
}

func (s *timesheetService) LiveStatus(ctx context.Context, companyID string) ([]dto.LiveStatusEntry, error) {
	entries, err := s.repo.TimeEntry.ListOpenByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list open entries failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LiveStatusEntry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		live := dto.LiveStatusEntry{
			UserEmail:      e.UserEmail,
			ClockIn:        e.ClockIn.UTC().Format(time.RFC3339),
			ElapsedDisplay: formatElapsed(s.now().Sub(e.ClockIn)),
		}
		if e.Project != nil {
			live.ProjectName = e.Project.Name
		}
		if user, err := s.repo.User.GetByEmail(ctx, e.UserEmail); err == nil {
			live.FullName = user.FullName
		}
		result = append(result, live)
	}

	return result, nil
}

// ── helpers ──

func (s *timesheetService) getCompanyEntry(ctx context.Context, companyID, id string) (*model.TimeEntry, error) {
	entry, err := s.repo.TimeEntry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("query time entry failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if entry.CompanyID != companyID {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}
