package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/model"
)

// GeofenceRepository is the geofence data-access interface.
type GeofenceRepository interface {
	Create(ctx context.Context, fence *model.GeofenceLocation) error
	GetByID(ctx context.Context, id string) (*model.GeofenceLocation, error)
	List(ctx context.Context, companyID string, includeInactive bool) ([]model.GeofenceLocation, error)
	// ListActive returns the fences that participate in admission checks.
	ListActive(ctx context.Context, companyID string) ([]model.GeofenceLocation, error)
	Update(ctx context.Context, fence *model.GeofenceLocation) error
	Delete(ctx context.Context, id string) error
}

type geofenceRepo struct {
	db *gorm.DB
}

// NewGeofenceRepo creates a GeofenceRepository.
func NewGeofenceRepo(db *gorm.DB) GeofenceRepository {
	return &geofenceRepo{db: db}
}

func (r *geofenceRepo) Create(ctx context.Context, fence *model.GeofenceLocation) error {
	return r.db.WithContext(ctx).Create(fence).Error
}

func (r *geofenceRepo) GetByID(ctx context.Context, id string) (*model.GeofenceLocation, error) {
	var fence model.GeofenceLocation
	err := r.db.WithContext(ctx).
		Where("geofence_id = ?", id).
		First(&fence).Error
	if err != nil {
		return nil, err
	}
	return &fence, nil
}

func (r *geofenceRepo) List(ctx context.Context, companyID string, includeInactive bool) ([]model.GeofenceLocation, error) {
	var fences []model.GeofenceLocation
	db := r.db.WithContext(ctx).Where("company_id = ?", companyID)

	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&fences).Error
	return fences, err
}

func (r *geofenceRepo) ListActive(ctx context.Context, companyID string) ([]model.GeofenceLocation, error) {
	var fences []model.GeofenceLocation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Find(&fences).Error
	return fences, err
}

func (r *geofenceRepo) Update(ctx context.Context, fence *model.GeofenceLocation) error {
	return r.db.WithContext(ctx).Save(fence).Error
}

func (r *geofenceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("geofence_id = ?", id).
		Delete(&model.GeofenceLocation{}).Error
}
