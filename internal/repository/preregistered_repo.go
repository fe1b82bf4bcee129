package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/model"
)

// PreregisteredRepository is the preregistration data-access interface.
type PreregisteredRepository interface {
	Create(ctx context.Context, emp *model.PreregisteredEmployee) error
	// GetPendingByEmail finds an unactivated preregistration for an email
	// within a company.
	GetPendingByEmail(ctx context.Context, companyID, email string) (*model.PreregisteredEmployee, error)
	List(ctx context.Context, companyID string) ([]model.PreregisteredEmployee, error)
	Update(ctx context.Context, emp *model.PreregisteredEmployee) error
}

type preregisteredRepo struct {
	db *gorm.DB
}

// NewPreregisteredRepo creates a PreregisteredRepository.
func NewPreregisteredRepo(db *gorm.DB) PreregisteredRepository {
	return &preregisteredRepo{db: db}
}

func (r *preregisteredRepo) Create(ctx context.Context, emp *model.PreregisteredEmployee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *preregisteredRepo) GetPendingByEmail(ctx context.Context, companyID, email string) (*model.PreregisteredEmployee, error) {
	var emp model.PreregisteredEmployee
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND email = ? AND status = ?", companyID, email, model.PreregStatusPending).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *preregisteredRepo) List(ctx context.Context, companyID string) ([]model.PreregisteredEmployee, error) {
	var emps []model.PreregisteredEmployee
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&emps).Error
	return emps, err
}

func (r *preregisteredRepo) Update(ctx context.Context, emp *model.PreregisteredEmployee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}
