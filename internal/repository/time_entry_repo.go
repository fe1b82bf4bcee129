package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/model"
)

// TimeEntryFilter narrows timesheet queries.
type TimeEntryFilter struct {
	UserEmail string
	Status    string
	From      *time.Time
	To        *time.Time
	Offset    int
	Limit     int
}

// TimeEntryRepository is the time-entry data-access interface.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *model.TimeEntry) error
	GetByID(ctx context.Context, id string) (*model.TimeEntry, error)
	// GetOpenByUser returns the user's open session (clock_out IS NULL), or
	// gorm.ErrRecordNotFound when the user is clocked out.
	GetOpenByUser(ctx context.Context, userEmail string) (*model.TimeEntry, error)
	Update(ctx context.Context, entry *model.TimeEntry) error
	List(ctx context.Context, companyID string, filter TimeEntryFilter) ([]model.TimeEntry, int64, error)
	// ListRange returns all closed entries overlapping [from, to] for reports.
	ListRange(ctx context.Context, companyID string, from, to *time.Time) ([]model.TimeEntry, error)
	// ListOpenByCompany returns every currently open session in the company.
	ListOpenByCompany(ctx context.Context, companyID string) ([]model.TimeEntry, error)
}

type timeEntryRepo struct {
	db *gorm.DB
}

// NewTimeEntryRepo creates a TimeEntryRepository.
func NewTimeEntryRepo(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepo{db: db}
}

func (r *timeEntryRepo) Create(ctx context.Context, entry *model.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timeEntryRepo) GetByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("time_entry_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepo) GetOpenByUser(ctx context.Context, userEmail string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("user_email = ? AND clock_out IS NULL", userEmail).
		Order("clock_in DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepo) Update(ctx context.Context, entry *model.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *timeEntryRepo) List(ctx context.Context, companyID string, filter TimeEntryFilter) ([]model.TimeEntry, int64, error) {
	var entries []model.TimeEntry
	var total int64

	db := r.db.WithContext(ctx).Model(&model.TimeEntry{}).Where("company_id = ?", companyID)

	if filter.UserEmail != "" {
		db = db.Where("user_email = ?", filter.UserEmail)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		db = db.Where("clock_in >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("clock_in < ?", *filter.To)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	if err := db.Preload("Project").
		Offset(filter.Offset).Limit(limit).
		Order("clock_in DESC").
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *timeEntryRepo) ListRange(ctx context.Context, companyID string, from, to *time.Time) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	db := r.db.WithContext(ctx).
		Where("company_id = ? AND clock_out IS NOT NULL", companyID)

	if from != nil {
		db = db.Where("clock_in >= ?", *from)
	}
	if to != nil {
		db = db.Where("clock_in < ?", *to)
	}

	err := db.Order("clock_in DESC").Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepo) ListOpenByCompany(ctx context.Context, companyID string) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("company_id = ? AND clock_out IS NULL", companyID).
		Order("clock_in ASC").
		Find(&entries).Error
	return entries, err
}
