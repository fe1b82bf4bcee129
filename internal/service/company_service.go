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

// ── company module errors ──

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrAlreadyHasCompany = errors.New("user already belongs to a company")
)

// Trial length granted at setup.
const trialDays = 30

// CompanyService handles tenant setup and settings.
type CompanyService interface {
	// Setup creates a company and promotes the caller to its owner/admin.
	Setup(ctx context.Context, userID string, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	Get(ctx context.Context, companyID string) (*dto.CompanyResponse, error)
	Update(ctx context.Context, companyID string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
}

type companyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCompanyService creates a CompanyService.
func NewCompanyService(repo *repository.Repository, logger *zap.Logger) CompanyService {
	return &companyService{repo: repo, logger: logger}
}

func (s *companyService) Setup(ctx context.Context, userID string, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("query user failed", zap.Error(err))
		return nil, err
	}
	if user.CompanyID != nil {
		return nil, ErrAlreadyHasCompany
	}

	trialEnd := time.Now().AddDate(0, 0, trialDays)
	company := &model.Company{
		Name:             req.Name,
		Industry:         req.Industry,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		Timezone:         req.Timezone,
		SubscriptionPlan: req.SubscriptionPlan,
		OwnerEmail:       user.Email,
		TrialEndsAt:      &trialEnd,
	}
	if company.Timezone == "" {
		company.Timezone = "UTC"
	}
	if company.SubscriptionPlan == "" {
		company.SubscriptionPlan = "starter"
	}

	if err := s.repo.Company.Create(ctx, company); err != nil {
		s.logger.Error("create company failed", zap.Error(err))
		return nil, err
	}

	user.CompanyID = &company.CompanyID
	user.IsCompanyAdmin = true
	user.JobRole = "owner"
	user.EmployeeID = fmt.Sprintf("ADMIN-%d", time.Now().UnixMilli())
	if user.HireDate == nil {
		now := time.Now()
		user.HireDate = &now
	}
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("promote owner failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("company created",
		zap.String("company", company.CompanyID),
		zap.String("owner", user.Email),
	)

	return toCompanyResponse(company), nil
}

func (s *companyService) Get(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := s.repo.Company.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("query company failed", zap.Error(err))
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) Update(ctx context.Context, companyID string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.repo.Company.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("query company failed", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Timezone != nil {
		company.Timezone = *req.Timezone
	}
	if req.SubscriptionPlan != nil {
		company.SubscriptionPlan = *req.SubscriptionPlan
	}

	if err := s.repo.Company.Update(ctx, company); err != nil {
		s.logger.Error("update company failed", zap.Error(err))
		return nil, err
	}

	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *model.Company) *dto.CompanyResponse {
	resp := &dto.CompanyResponse{
		ID:               c.CompanyID,
		Name:             c.Name,
		Industry:         c.Industry,
		Address:          c.Address,
		Phone:            c.Phone,
		Email:            c.Email,
		Website:          c.Website,
		Timezone:         c.Timezone,
		SubscriptionPlan: c.SubscriptionPlan,
		OwnerEmail:       c.OwnerEmail,
		CreatedAt:        c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c.TrialEndsAt != nil {
		resp.TrialEndsAt = c.TrialEndsAt.Format("2006-01-02")
	}
	return resp
}
