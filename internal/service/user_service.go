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

// ── employee module errors ──

var (
	ErrNotInCompany = errors.New("record belongs to another company")
)

// UserService manages employee records within a company.
type UserService interface {
	List(ctx context.Context, companyID string, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	GetByID(ctx context.Context, companyID, id string) (*dto.UserResponse, error)
	Update(ctx context.Context, companyID, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
	// Preregister records employment details for an employee who has not
	// signed up yet; consumed when their invitation is accepted.
	Preregister(ctx context.Context, companyID string, req *dto.PreregisterEmployeeRequest) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context, companyID string, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	users, total, err := s.repo.User.ListByCompany(ctx, companyID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list users failed", zap.String("company", companyID), zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}

	return result, total, nil
}

func (s *userService) GetByID(ctx context.Context, companyID, id string) (*dto.UserResponse, error) {
	user, err := s.getCompanyUser(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, companyID, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.getCompanyUser(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}
	if req.JobRole != nil {
		user.JobRole = *req.JobRole
	}
	if req.HourlyRate != nil {
		user.HourlyRate = *req.HourlyRate
	}
	if req.PTOBalance != nil {
		user.PTOBalance = *req.PTOBalance
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Deactivate(ctx context.Context, companyID, id string) error {
	user, err := s.getCompanyUser(ctx, companyID, id)
	if err != nil {
		return err
	}

	user.IsActive = false
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("deactivate user failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *userService) Preregister(ctx context.Context, companyID string, req *dto.PreregisterEmployeeRequest) error {
	emp := &model.PreregisteredEmployee{
		CompanyID:    companyID,
		Email:        req.Email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		HourlyRate:   req.HourlyRate,
		PTOBalance:   req.PTOBalance,
		JobRole:      req.JobRole,
		Status:       model.PreregStatusPending,
	}
	if emp.JobRole == "" {
		emp.JobRole = "employee"
	}
	if req.HireDate != "" {
		if d, err := time.Parse("2006-01-02", req.HireDate); err == nil {
			emp.HireDate = &d
		}
	}

	if err := s.repo.Preregistered.Create(ctx, emp); err != nil {
		s.logger.Error("create preregistration failed", zap.String("email", req.Email), zap.Error(err))
		return err
	}

	return nil
}

// ── helpers ──

func (s *userService) getCompanyUser(ctx context.Context, companyID, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("query user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if user.CompanyID == nil || *user.CompanyID != companyID {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:             u.UserID,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		EmployeeID:     u.EmployeeID,
		JobRole:        u.JobRole,
		HourlyRate:     u.HourlyRate,
		PTOBalance:     u.PTOBalance,
		IsCompanyAdmin: u.IsCompanyAdmin,
		IsActive:       u.IsActive,
	}
	if u.CompanyID != nil {
		resp.CompanyID = *u.CompanyID
	}
	if u.HireDate != nil {
		resp.HireDate = u.HireDate.Format("2006-01-02")
	}
	if u.Department != nil {
		resp.Department = &dto.DepartmentResponse{
			ID:       u.Department.DepartmentID,
			Name:     u.Department.Name,
			IsActive: u.Department.IsActive,
		}
	}
	return resp
}
