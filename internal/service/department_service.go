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

// ── department module errors ──

var (
	ErrDepartmentNotFound = errors.New("department not found")
)

// DepartmentService manages departments within a company.
type DepartmentService interface {
	Create(ctx context.Context, companyID string, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.DepartmentResponse, error)
	List(ctx context.Context, companyID string, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, companyID, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) Create(ctx context.Context, companyID string, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := &model.Department{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("create department failed", zap.Error(err))
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

func (s *departmentService) GetByID(ctx context.Context, companyID, id string) (*dto.DepartmentResponse, error) {
	dept, err := s.getCompanyDepartment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

func (s *departmentService) List(ctx context.Context, companyID string, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx, companyID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, *toDepartmentResponse(&depts[i]))
	}

	return result, nil
}

func (s *departmentService) Update(ctx context.Context, companyID, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.getCompanyDepartment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("update department failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

func (s *departmentService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.getCompanyDepartment(ctx, companyID, id); err != nil {
		return err
	}

	if err := s.repo.Department.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func (s *departmentService) getCompanyDepartment(ctx context.Context, companyID, id string) (*model.Department, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("query department failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if dept.CompanyID != companyID {
		return nil, ErrDepartmentNotFound
	}
	return dept, nil
}

func toDepartmentResponse(d *model.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          d.DepartmentID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
