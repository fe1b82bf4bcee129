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

// ── time off module errors ──

var (
	ErrTimeOffNotFound  = errors.New("time off request not found")
	ErrTimeOffReviewed  = errors.New("time off request already reviewed")
	ErrTimeOffDateOrder = errors.New("end date must not be before start date")
	ErrInsufficientPTO  = errors.New("insufficient pto balance")
)

// TimeOffService manages leave requests. Approving a PTO request deducts the
// requested hours from the employee's balance.
type TimeOffService interface {
	Create(ctx context.Context, companyID, userEmail string, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error)
	ListMine(ctx context.Context, userEmail string) ([]dto.TimeOffResponse, error)
	List(ctx context.Context, companyID string, req *dto.TimeOffListRequest) ([]dto.TimeOffResponse, error)
	Review(ctx context.Context, companyID, reviewerEmail, id string, req *dto.ReviewTimeOffRequest) (*dto.TimeOffResponse, error)
}

type timeOffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeOffService creates a TimeOffService.
func NewTimeOffService(repo *repository.Repository, logger *zap.Logger) TimeOffService {
	return &timeOffService{repo: repo, logger: logger}
}

func (s *timeOffService) Create(ctx context.Context, companyID, userEmail string, req *dto.CreateTimeOffRequest) (*dto.TimeOffResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return nil, ErrTimeOffDateOrder
	}

	if req.Type == model.TimeOffTypePTO {
		user, err := s.repo.User.GetByEmail(ctx, userEmail)
		if err != nil {
			s.logger.Error("query user failed", zap.String("email", userEmail), zap.Error(err))
			return nil, err
		}
		if user.PTOBalance < req.HoursRequested {
			return nil, fmt.Errorf("%w: %.2f requested, %.2f available",
				ErrInsufficientPTO, req.HoursRequested, user.PTOBalance)
		}
	}

	request := &model.TimeOffRequest{
		CompanyID:      companyID,
		UserEmail:      userEmail,
		Type:           req.Type,
		StartDate:      start,
		EndDate:        end,
		HoursRequested: req.HoursRequested,
		Reason:         req.Reason,
		Status:         model.TimeOffStatusPending,
	}

	if err := s.repo.TimeOff.Create(ctx, request); err != nil {
		s.logger.Error("create time off request failed", zap.Error(err))
		return nil, err
	}

	return toTimeOffResponse(request), nil
}

func (s *timeOffService) ListMine(ctx context.Context, userEmail string) ([]dto.TimeOffResponse, error) {
	requests, err := s.repo.TimeOff.ListByUser(ctx, userEmail)
	if err != nil {
		s.logger.Error("list own time off failed", zap.String("email", userEmail), zap.Error(err))
		return nil, err
	}
	return toTimeOffResponses(requests), nil
}

func (s *timeOffService) List(ctx context.Context, companyID string, req *dto.TimeOffListRequest) ([]dto.TimeOffResponse, error) {
	requests, err := s.repo.TimeOff.ListByCompany(ctx, companyID, req.Status)
	if err != nil {
		s.logger.Error("list time off failed", zap.Error(err))
		return nil, err
	}
	return toTimeOffResponses(requests), nil
}

// Review settles a pending request. On PTO approval the hours are deducted
// from the employee's balance; the status write happens first so a failed
// balance update leaves an approved request flagged in the logs rather than
// a silently drained balance.
func (s *timeOffService) Review(ctx context.Context, companyID, reviewerEmail, id string, req *dto.ReviewTimeOffRequest) (*dto.TimeOffResponse, error) {
	request, err := s.repo.TimeOff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeOffNotFound
		}
		s.logger.Error("query time off request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if request.CompanyID != companyID {
		return nil, ErrTimeOffNotFound
	}
	if request.Status != model.TimeOffStatusPending {
		return nil, ErrTimeOffReviewed
	}

	request.Status = req.Status
	request.ReviewedBy = &reviewerEmail
	request.ReviewNotes = req.ReviewNotes

	if err := s.repo.TimeOff.Update(ctx, request); err != nil {
		s.logger.Error("persist review failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Status == model.TimeOffStatusApproved && request.Type == model.TimeOffTypePTO {
		if err := s.deductPTO(ctx, request); err != nil {
			s.logger.Error("pto deduction failed after approval",
				zap.String("id", id),
				zap.String("email", request.UserEmail),
				zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("time off reviewed",
		zap.String("id", id),
		zap.String("status", req.Status),
		zap.String("reviewer", reviewerEmail))

	return toTimeOffResponse(request), nil
}

// ── helpers ──

func (s *timeOffService) deductPTO(ctx context.Context, request *model.TimeOffRequest) error {
	user, err := s.repo.User.GetByEmail(ctx, request.UserEmail)
	if err != nil {
		return err
	}

	user.PTOBalance -= request.HoursRequested
	if user.PTOBalance < 0 {
		user.PTOBalance = 0
	}

	return s.repo.User.Update(ctx, user)
}

func toTimeOffResponse(r *model.TimeOffRequest) *dto.TimeOffResponse {
	resp := &dto.TimeOffResponse{
		ID:             r.TimeOffRequestID,
		UserEmail:      r.UserEmail,
		Type:           r.Type,
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		HoursRequested: r.HoursRequested,
		Reason:         r.Reason,
		Status:         r.Status,
		ReviewNotes:    r.ReviewNotes,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.ReviewedBy != nil {
		resp.ReviewedBy = *r.ReviewedBy
	}
	return resp
}

func toTimeOffResponses(requests []model.TimeOffRequest) []dto.TimeOffResponse {
	result := make([]dto.TimeOffResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toTimeOffResponse(&requests[i]))
	}
	return result
}
