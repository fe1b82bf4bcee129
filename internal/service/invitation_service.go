package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yasiralharfash/chronos/config"
	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
)

// ── invitation module errors ──

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationSettled  = errors.New("invitation already accepted or revoked")
	ErrAlreadyInvited     = errors.New("a pending invitation already exists for this email")
)

// InvitationService issues and manages employee invites. The invite link is
// handed back to the inviter for delivery; no email is sent from here.
type InvitationService interface {
	Invite(ctx context.Context, companyID string, req *dto.InviteEmployeeRequest) (*dto.InvitationResponse, error)
	ListPending(ctx context.Context, companyID string) ([]dto.InvitationResponse, error)
	// Validate is the public token check used by the join page.
	Validate(ctx context.Context, token string) (*dto.InvitationValidateResponse, error)
	Revoke(ctx context.Context, companyID, id string) error
}

type invitationService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewInvitationService creates an InvitationService.
func NewInvitationService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) InvitationService {
	return &invitationService{cfg: cfg, repo: repo, logger: logger, now: time.Now}
}

func (s *invitationService) Invite(ctx context.Context, companyID string, req *dto.InviteEmployeeRequest) (*dto.InvitationResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query user failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	pending, err := s.repo.Invitation.ListPending(ctx, companyID)
	if err != nil {
		s.logger.Error("list pending invitations failed", zap.Error(err))
		return nil, err
	}
	for _, inv := range pending {
		if inv.Email == email && inv.ExpiresAt.After(s.now()) {
			return nil, ErrAlreadyInvited
		}
	}

	jobRole := req.JobRole
	if jobRole == "" {
		jobRole = "employee"
	}

	inv := &model.Invitation{
		CompanyID:       companyID,
		Email:           email,
		FullName:        req.FullName,
		DepartmentID:    req.DepartmentID,
		HourlyRate:      req.HourlyRate,
		JobRole:         jobRole,
		InvitationToken: uuid.NewString(),
		Status:          model.InvitationStatusPending,
		ExpiresAt:       s.now().Add(s.cfg.Auth.InvitationTTL),
	}

	if err := s.repo.Invitation.Create(ctx, inv); err != nil {
		s.logger.Error("create invitation failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	// employment details entered now are applied when the invite is accepted
	prereg := &model.PreregisteredEmployee{
		CompanyID:    companyID,
		Email:        email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		HourlyRate:   req.HourlyRate,
		JobRole:      jobRole,
		Status:       model.PreregStatusPending,
	}
	if err := s.repo.Preregistered.Create(ctx, prereg); err != nil {
		s.logger.Warn("create preregistration failed", zap.String("email", email), zap.Error(err))
	}

	s.logger.Info("employee invited",
		zap.String("email", email),
		zap.String("job_role", jobRole),
		zap.Time("expires_at", inv.ExpiresAt))

	return s.toInvitationResponse(inv, true), nil
}

func (s *invitationService) ListPending(ctx context.Context, companyID string) ([]dto.InvitationResponse, error) {
	invs, err := s.repo.Invitation.ListPending(ctx, companyID)
	if err != nil {
		s.logger.Error("list pending invitations failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InvitationResponse, 0, len(invs))
	for i := range invs {
		result = append(result, *s.toInvitationResponse(&invs[i], true))
	}

	return result, nil
}

func (s *invitationService) Validate(ctx context.Context, token string) (*dto.InvitationValidateResponse, error) {
	inv, err := s.repo.Invitation.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.InvitationValidateResponse{Valid: false}, nil
		}
		s.logger.Error("query invitation failed", zap.Error(err))
		return nil, err
	}

	if inv.Status != model.InvitationStatusPending || !inv.ExpiresAt.After(s.now()) {
		return &dto.InvitationValidateResponse{Valid: false}, nil
	}

	resp := &dto.InvitationValidateResponse{
		Valid:     true,
		Email:     inv.Email,
		FullName:  inv.FullName,
		ExpiresAt: inv.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if company, err := s.repo.Company.GetByID(ctx, inv.CompanyID); err == nil {
		resp.CompanyName = company.Name
	}

	return resp, nil
}

func (s *invitationService) Revoke(ctx context.Context, companyID, id string) error {
	inv, err := s.repo.Invitation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvitationNotFound
		}
		s.logger.Error("query invitation failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if inv.CompanyID != companyID {
		return ErrInvitationNotFound
	}
	if inv.Status != model.InvitationStatusPending {
		return ErrInvitationSettled
	}

	inv.Status = model.InvitationStatusRevoked

	if err := s.repo.Invitation.Update(ctx, inv); err != nil {
		s.logger.Error("revoke invitation failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("invitation revoked", zap.String("id", id), zap.String("email", inv.Email))
	return nil
}

// ── helpers ──

func (s *invitationService) toInvitationResponse(inv *model.Invitation, withURL bool) *dto.InvitationResponse {
	resp := &dto.InvitationResponse{
		ID:        inv.InvitationID,
		Email:     inv.Email,
		FullName:  inv.FullName,
		JobRole:   inv.JobRole,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt.UTC().Format(time.RFC3339),
		CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339),
	}
	if withURL && inv.Status == model.InvitationStatusPending {
		resp.InviteURL = fmt.Sprintf("%s/join?token=%s", s.cfg.Server.BaseURL, inv.InvitationToken)
	}
	if inv.AcceptedAt != nil {
		resp.AcceptedAt = inv.AcceptedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
