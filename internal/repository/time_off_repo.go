package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/model"
)

// TimeOffRepository is the leave-request data-access interface.
type TimeOffRepository interface {
	Create(ctx context.Context, req *model.TimeOffRequest) error
	GetByID(ctx context.Context, id string) (*model.TimeOffRequest, error)
	ListByCompany(ctx context.Context, companyID string, status string) ([]model.TimeOffRequest, error)
	ListByUser(ctx context.Context, userEmail string) ([]model.TimeOffRequest, error)
	Update(ctx context.Context, req *model.TimeOffRequest) error
}

type timeOffRepo struct {
	db *gorm.DB
}

// NewTimeOffRepo creates a TimeOffRepository.
func NewTimeOffRepo(db *gorm.DB) TimeOffRepository {
	return &timeOffRepo{db: db}
}

func (r *timeOffRepo) Create(ctx context.Context, req *model.TimeOffRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *timeOffRepo) GetByID(ctx context.Context, id string) (*model.TimeOffRequest, error) {
	var req model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Where("time_off_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *timeOffRepo) ListByCompany(ctx context.Context, companyID string, status string) ([]model.TimeOffRequest, error) {
	var reqs []model.TimeOffRequest
	db := r.db.WithContext(ctx).Where("company_id = ?", companyID)

	if status != "" {
		db = db.Where("status = ?", status)
	}

	err := db.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *timeOffRepo) ListByUser(ctx context.Context, userEmail string) ([]model.TimeOffRequest, error) {
	var reqs []model.TimeOffRequest
	err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *timeOffRepo) Update(ctx context.Context, req *model.TimeOffRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
