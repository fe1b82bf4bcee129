package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
	"github.com/yasiralharfash/chronos/pkg/geo"
)

// ── clock module errors ──

var (
	// ErrLocationUnavailable: the client reported no device fix while active
	// geofences are configured. Distinct from a geofence rejection.
	ErrLocationUnavailable = errors.New("device location unavailable")
	// ErrGeofenceRejected: a fix was reported but it is outside every active
	// perimeter.
	ErrGeofenceRejected = errors.New("not within an allowed clock-in location")
	// ErrInvalidTransition: the requested transition is not legal from the
	// current session state. Raised before any store write.
	ErrInvalidTransition = errors.New("invalid clock transition")
)

// Session states.
const (
	StateClockedOut = "clocked_out"
	StateClockedIn  = "clocked_in"
	StateOnBreak    = "on_break"
)

// ClockService drives the clock session state machine:
// CLOCKED_OUT → CLOCKED_IN ⇄ ON_BREAK → CLOCKED_OUT.
//
// The open TimeEntry is the durable session state; a break in progress is
// tracked in memory only and is lost on restart, in which case the session
// resumes as CLOCKED_IN with the last persisted break total.
type ClockService interface {
	Status(ctx context.Context, userEmail string) (*dto.ClockStatusResponse, error)
	ClockIn(ctx context.Context, userEmail, companyID string, req *dto.ClockInRequest) (*dto.TimeEntryResponse, error)
	StartBreak(ctx context.Context, userEmail string) (*dto.ClockStatusResponse, error)
	EndBreak(ctx context.Context, userEmail string) (*dto.ClockStatusResponse, error)
	ClockOut(ctx context.Context, userEmail, companyID string, req *dto.ClockOutRequest) (*dto.TimeEntryResponse, error)
}

type clockService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time

	mu          sync.Mutex
	breakStarts map[string]time.Time   // userEmail → break start, memory only
	userLocks   map[string]*sync.Mutex // serializes transitions per user
}

// NewClockService creates a ClockService.
func NewClockService(repo *repository.Repository, logger *zap.Logger) ClockService {
	return &clockService{
		repo:        repo,
		logger:      logger,
		now:         time.Now,
		breakStarts: make(map[string]time.Time),
		userLocks:   make(map[string]*sync.Mutex),
	}
}

// lockUser serializes transitions for one user: a new transition may not
// begin while a prior one for the same session is still in flight.
func (s *clockService) lockUser(userEmail string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userEmail]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userEmail] = l
	}
	return l
}

func (s *clockService) breakStart(userEmail string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.breakStarts[userEmail]
	return t, ok
}

func (s *clockService) setBreakStart(userEmail string, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.breakStarts[userEmail] = t
}

func (s *clockService) clearBreakStart(userEmail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.breakStarts, userEmail)
}

// ────────────────────── Status ──────────────────────

func (s *clockService) Status(ctx context.Context, userEmail string) (*dto.ClockStatusResponse, error) {
	entry, err := s.repo.TimeEntry.GetOpenByUser(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.ClockStatusResponse{State: StateClockedOut}, nil
		}
		s.logger.Error("query open entry failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	state := StateClockedIn
	if _, onBreak := s.breakStart(userEmail); onBreak {
		state = StateOnBreak
	}

	return &dto.ClockStatusResponse{
		State:             state,
		ElapsedDisplay:    formatElapsed(s.now().Sub(entry.ClockIn)),
		BreakTotalMinutes: entry.BreakDurationMinutes,
		Entry:             toTimeEntryResponse(entry),
	}, nil
}

// ────────────────────── ClockIn ──────────────────────

// ClockIn opens a new session. The open-entry precondition is re-checked
// immediately before the create; without a conditional write in the store
// this reduces, not eliminates, the race with a concurrent clock-in from
// another device.
func (s *clockService) ClockIn(ctx context.Context, userEmail, companyID string, req *dto.ClockInRequest) (*dto.TimeEntryResponse, error) {
	lock := s.lockUser(userEmail)
	lock.Lock()
	defer lock.Unlock()

	// precondition: no open session
	if _, err := s.repo.TimeEntry.GetOpenByUser(ctx, userEmail); err == nil {
		return nil, fmt.Errorf("%w: already clocked in", ErrInvalidTransition)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query open entry failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	if err := s.checkGeofence(ctx, companyID, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	entry := &model.TimeEntry{
		CompanyID: companyID,
		UserEmail: userEmail,
		ClockIn:   s.now(),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		ProjectID: req.ProjectID,
		Notes:     req.Notes,
		Status:    model.EntryStatusPending,
	}

	if err := s.repo.TimeEntry.Create(ctx, entry); err != nil {
		s.logger.Error("create time entry failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	s.logger.Info("clocked in",
		zap.String("user", userEmail),
		zap.Bool("location_captured", req.Latitude != nil),
	)

	return toTimeEntryResponse(entry), nil
}

// ────────────────────── StartBreak ──────────────────────

// StartBreak records the break start in memory only; nothing is persisted
// until the break ends.
func (s *clockService) StartBreak(ctx context.Context, userEmail string) (*dto.ClockStatusResponse, error) {
	lock := s.lockUser(userEmail)
	lock.Lock()
	defer lock.Unlock()

	entry, err := s.repo.TimeEntry.GetOpenByUser(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: not clocked in", ErrInvalidTransition)
		}
		s.logger.Error("query open entry failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	if _, onBreak := s.breakStart(userEmail); onBreak {
		return nil, fmt.Errorf("%w: break already in progress", ErrInvalidTransition)
	}

	s.setBreakStart(userEmail, s.now())

	return &dto.ClockStatusResponse{
		State:             StateOnBreak,
		ElapsedDisplay:    formatElapsed(s.now().Sub(entry.ClockIn)),
		BreakTotalMinutes: entry.BreakDurationMinutes,
		Entry:             toTimeEntryResponse(entry),
	}, nil
}

// ────────────────────── EndBreak ──────────────────────

// EndBreak folds whole elapsed minutes into the persisted break total and
// discards the in-memory marker. The marker survives a failed store write so
// the user can retry without losing the break.
func (s *clockService) EndBreak(ctx context.Context, userEmail string) (*dto.ClockStatusResponse, error) {
	lock := s.lockUser(userEmail)
	lock.Lock()
	defer lock.Unlock()

	entry, err := s.repo.TimeEntry.GetOpenByUser(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: not clocked in", ErrInvalidTransition)
		}
		s.logger.Error("query open entry failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	start, onBreak := s.breakStart(userEmail)
	if !onBreak {
		return nil, fmt.Errorf("%w: no break in progress", ErrInvalidTransition)
	}

	elapsed := int(s.now().Sub(start).Minutes())
	entry.BreakDurationMinutes += elapsed

	if err := s.repo.TimeEntry.Update(ctx, entry); err != nil {
		entry.BreakDurationMinutes -= elapsed
		s.logger.Error("persist break total failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	s.clearBreakStart(userEmail)

	return &dto.ClockStatusResponse{
		State:             StateClockedIn,
		ElapsedDisplay:    formatElapsed(s.now().Sub(entry.ClockIn)),
		BreakTotalMinutes: entry.BreakDurationMinutes,
		Entry:             toTimeEntryResponse(entry),
	}, nil
}

// ────────────────────── ClockOut ──────────────────────

// ClockOut closes the open session: forbidden while a break is in progress,
// gated by the geofence policy, one update write.
func (s *clockService) ClockOut(ctx context.Context, userEmail, companyID string, req *dto.ClockOutRequest) (*dto.TimeEntryResponse, error) {
	lock := s.lockUser(userEmail)
	lock.Lock()
	defer lock.Unlock()

	entry, err := s.repo.TimeEntry.GetOpenByUser(ctx, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: not clocked in", ErrInvalidTransition)
		}
		s.logger.Error("query open entry failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	if _, onBreak := s.breakStart(userEmail); onBreak {
		return nil, fmt.Errorf("%w: end break before clocking out", ErrInvalidTransition)
	}

	if err := s.checkGeofence(ctx, companyID, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	now := s.now()
	total := round2(ComputeWorkedHours(entry.ClockIn, now, entry.BreakDurationMinutes))

	entry.ClockOut = &now
	entry.TotalHours = &total
	if req.Notes != "" {
		entry.Notes = req.Notes
	}
	if req.ProjectID != nil {
		entry.ProjectID = req.ProjectID
	}

	if err := s.repo.TimeEntry.Update(ctx, entry); err != nil {
		entry.ClockOut = nil
		entry.TotalHours = nil
		s.logger.Error("persist clock-out failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}

	s.logger.Info("clocked out",
		zap.String("user", userEmail),
		zap.Float64("total_hours", total),
		zap.Int("break_minutes", entry.BreakDurationMinutes),
	)

	return toTimeEntryResponse(entry), nil
}

// ── geofence gate ──

// checkGeofence applies the admission policy: no active fences means open
// policy (a missing fix is fine); with active fences a fix is required and
// must fall inside at least one perimeter.
func (s *clockService) checkGeofence(ctx context.Context, companyID string, lat, lng *float64) error {
	fences, err := s.repo.Geofence.ListActive(ctx, companyID)
	if err != nil {
		s.logger.Error("list active geofences failed", zap.String("company", companyID), zap.Error(err))
		return err
	}
	if len(fences) == 0 {
		return nil
	}
	if lat == nil || lng == nil {
		return ErrLocationUnavailable
	}

	circles := make([]geo.Circle, 0, len(fences))
	for _, f := range fences {
		circles = append(circles, geo.Circle{
			Latitude:     f.Latitude,
			Longitude:    f.Longitude,
			RadiusMeters: f.RadiusMeters,
		})
	}

	if !geo.WithinAny(*lat, *lng, circles) {
		return ErrGeofenceRejected
	}
	return nil
}

// ── time accounting ──

// ComputeWorkedHours returns the billable span minus breaks, clamped at
// zero so clock skew or an oversized break total never yields negative
// worked time. Full precision; rounding happens at persistence.
func ComputeWorkedHours(clockIn, clockOut time.Time, breakMinutes int) float64 {
	hours := clockOut.Sub(clockIn).Hours() - float64(breakMinutes)/60
	if hours < 0 {
		return 0
	}
	return hours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatElapsed renders a duration as H:MM:SS for the clock display.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ── response mapping ──

func toTimeEntryResponse(e *model.TimeEntry) *dto.TimeEntryResponse {
	resp := &dto.TimeEntryResponse{
		ID:                   e.TimeEntryID,
		UserEmail:            e.UserEmail,
		ClockIn:              e.ClockIn.UTC().Format(time.RFC3339),
		BreakDurationMinutes: e.BreakDurationMinutes,
		TotalHours:           e.TotalHours,
		Latitude:             e.Latitude,
		Longitude:            e.Longitude,
		Notes:                e.Notes,
		Status:               e.Status,
	}
	if e.ClockOut != nil {
		resp.ClockOut = e.ClockOut.UTC().Format(time.RFC3339)
	}
	if e.ProjectID != nil {
		resp.ProjectID = *e.ProjectID
	}
	if e.Project != nil {
		resp.ProjectName = e.Project.Name
	}
	return resp
}
