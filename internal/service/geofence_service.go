package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
)

// ── geofence module errors ──

var (
	ErrGeofenceNotFound = errors.New("geofence not found")
)

// GeofenceService manages the circular perimeters that gate clock operations.
type GeofenceService interface {
	Create(ctx context.Context, companyID string, req *dto.CreateGeofenceRequest) (*dto.GeofenceResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.GeofenceResponse, error)
	List(ctx context.Context, companyID string, req *dto.GeofenceListRequest) ([]dto.GeofenceResponse, error)
	Update(ctx context.Context, companyID, id string, req *dto.UpdateGeofenceRequest) (*dto.GeofenceResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type geofenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGeofenceService creates a GeofenceService.
func NewGeofenceService(repo *repository.Repository, logger *zap.Logger) GeofenceService {
	return &geofenceService{repo: repo, logger: logger}
}

func (s *geofenceService) Create(ctx context.Context, companyID string, req *dto.CreateGeofenceRequest) (*dto.GeofenceResponse, error) {
	fence := &model.GeofenceLocation{
		CompanyID:    companyID,
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsActive:     true,
	}

	if err := s.repo.Geofence.Create(ctx, fence); err != nil {
		s.logger.Error("create geofence failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("geofence created",
		zap.String("geofence_id", fence.GeofenceID),
		zap.String("name", fence.Name),
		zap.Float64("radius_meters", fence.RadiusMeters))

	return toGeofenceResponse(fence), nil
}

func (s *geofenceService) GetByID(ctx context.Context, companyID, id string) (*dto.GeofenceResponse, error) {
	fence, err := s.getCompanyGeofence(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toGeofenceResponse(fence), nil
}

func (s *geofenceService) List(ctx context.Context, companyID string, req *dto.GeofenceListRequest) ([]dto.GeofenceResponse, error) {
	fences, err := s.repo.Geofence.List(ctx, companyID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("list geofences failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.GeofenceResponse, 0, len(fences))
	for i := range fences {
		result = append(result, *toGeofenceResponse(&fences[i]))
	}

	return result, nil
}

func (s *geofenceService) Update(ctx context.Context, companyID, id string, req *dto.UpdateGeofenceRequest) (*dto.GeofenceResponse, error) {
	fence, err := s.getCompanyGeofence(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		fence.Name = *req.Name
	}
	if req.Address != nil {
		fence.Address = *req.Address
	}
	if req.Latitude != nil {
		fence.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		fence.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		fence.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		fence.IsActive = *req.IsActive
	}

	if err := s.repo.Geofence.Update(ctx, fence); err != nil {
		s.logger.Error("update geofence failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toGeofenceResponse(fence), nil
}

func (s *geofenceService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.getCompanyGeofence(ctx, companyID, id); err != nil {
		return err
	}

	if err := s.repo.Geofence.Delete(ctx, id); err != nil {
		s.logger.Error("delete geofence failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func (s *geofenceService) getCompanyGeofence(ctx context.Context, companyID, id string) (*model.GeofenceLocation, error) {
	fence, err := s.repo.Geofence.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeofenceNotFound
		}
		s.logger.Error("query geofence failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if fence.CompanyID != companyID {
		return nil, ErrGeofenceNotFound
	}
	return fence, nil
}

func toGeofenceResponse(f *model.GeofenceLocation) *dto.GeofenceResponse {
	return &dto.GeofenceResponse{
		ID:           f.GeofenceID,
		Name:         f.Name,
		Address:      f.Address,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		RadiusMeters: f.RadiusMeters,
		IsActive:     f.IsActive,
		CreatedAt:    f.CreatedAt.UTC().Format(time.RFC3339),
	}
}
