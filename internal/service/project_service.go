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

// ── project module errors ──

var (
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectService manages billable projects.
type ProjectService interface {
	Create(ctx context.Context, companyID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.ProjectResponse, error)
	List(ctx context.Context, companyID string, req *dto.ProjectListRequest) ([]dto.ProjectResponse, error)
	Update(ctx context.Context, companyID, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) Create(ctx context.Context, companyID string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := &model.Project{
		CompanyID:   companyID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Status:      model.ProjectStatusActive,
	}

	if err := s.repo.Project.Create(ctx, project); err != nil {
		s.logger.Error("create project failed", zap.Error(err))
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) GetByID(ctx context.Context, companyID, id string) (*dto.ProjectResponse, error) {
	project, err := s.getCompanyProject(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, companyID string, req *dto.ProjectListRequest) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.Project.List(ctx, companyID, req.Status)
	if err != nil {
		s.logger.Error("list projects failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *toProjectResponse(&projects[i]))
	}

	return result, nil
}

func (s *projectService) Update(ctx context.Context, companyID, id string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.getCompanyProject(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Code != nil {
		project.Code = *req.Code
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	if err := s.repo.Project.Update(ctx, project); err != nil {
		s.logger.Error("update project failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.getCompanyProject(ctx, companyID, id); err != nil {
		return err
	}

	if err := s.repo.Project.Delete(ctx, id); err != nil {
		s.logger.Error("delete project failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func (s *projectService) getCompanyProject(ctx context.Context, companyID, id string) (*model.Project, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("query project failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if project.CompanyID != companyID {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func toProjectResponse(p *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ProjectID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
