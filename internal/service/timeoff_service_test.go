package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
)

func setupTestTimeOffService() (TimeOffService, *mockUserRepo, *mockTimeOffRepo) {
	repo, _, _, userRepo := newMockRepository()
	svc := NewTimeOffService(repo, zap.NewNop())
	return svc, userRepo, repo.TimeOff.(*mockTimeOffRepo)
}

func seedEmployee(userRepo *mockUserRepo, email string, ptoBalance float64) *model.User {
	companyID := testCompany
	user := &model.User{
		Email:      email,
		FullName:   "PTO Tester",
		CompanyID:  &companyID,
		JobRole:    "employee",
		PTOBalance: ptoBalance,
		IsActive:   true,
	}
	_ = userRepo.Create(context.Background(), user)
	return user
}

// ── Create ──

func TestTimeOffService_Create_Success(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	seedEmployee(userRepo, testUser, 40)

	resp, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-08",
		HoursRequested: 16,
		Reason:         "long weekend",
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}
	if resp.Status != model.TimeOffStatusPending {
		t.Errorf("expected pending status, got %s", resp.Status)
	}
}

func TestTimeOffService_Create_InsufficientBalance(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	seedEmployee(userRepo, testUser, 8)

	_, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-08",
		HoursRequested: 16,
	})
	if !errors.Is(err, ErrInsufficientPTO) {
		t.Errorf("expected ErrInsufficientPTO, got %v", err)
	}
}

func TestTimeOffService_Create_UnpaidSkipsBalanceCheck(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	seedEmployee(userRepo, testUser, 0)

	_, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypeUnpaid,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-08",
		HoursRequested: 16,
	})
	if err != nil {
		t.Fatalf("unpaid leave should not require pto balance: %v", err)
	}
}

func TestTimeOffService_Create_DateOrder(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	seedEmployee(userRepo, testUser, 40)

	_, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-08",
		EndDate:        "2026-09-07",
		HoursRequested: 8,
	})
	if !errors.Is(err, ErrTimeOffDateOrder) {
		t.Errorf("expected ErrTimeOffDateOrder, got %v", err)
	}
}

// ── Review ──

func TestTimeOffService_Review_ApprovePTODeductsBalance(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	user := seedEmployee(userRepo, testUser, 40)

	created, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-08",
		HoursRequested: 16,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	resp, err := svc.Review(context.Background(), testCompany, "admin@acme.test", created.ID, &dto.ReviewTimeOffRequest{
		Status: model.TimeOffStatusApproved,
	})
	if err != nil {
		t.Fatalf("review should succeed: %v", err)
	}
	if resp.Status != model.TimeOffStatusApproved {
		t.Errorf("expected approved, got %s", resp.Status)
	}
	if resp.ReviewedBy != "admin@acme.test" {
		t.Errorf("expected reviewer recorded, got %s", resp.ReviewedBy)
	}

	stored, _ := userRepo.GetByID(context.Background(), user.UserID)
	if stored.PTOBalance != 24 {
		t.Errorf("expected balance 24 after deduction, got %v", stored.PTOBalance)
	}
}

func TestTimeOffService_Review_RejectKeepsBalance(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	user := seedEmployee(userRepo, testUser, 40)

	created, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-08",
		HoursRequested: 16,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	if _, err := svc.Review(context.Background(), testCompany, "admin@acme.test", created.ID, &dto.ReviewTimeOffRequest{
		Status:      model.TimeOffStatusRejected,
		ReviewNotes: "busy week",
	}); err != nil {
		t.Fatalf("review should succeed: %v", err)
	}

	stored, _ := userRepo.GetByID(context.Background(), user.UserID)
	if stored.PTOBalance != 40 {
		t.Errorf("rejection must not touch balance, got %v", stored.PTOBalance)
	}
}

func TestTimeOffService_Review_ApproveSickKeepsBalance(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	user := seedEmployee(userRepo, testUser, 40)

	created, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypeSick,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-07",
		HoursRequested: 8,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	if _, err := svc.Review(context.Background(), testCompany, "admin@acme.test", created.ID, &dto.ReviewTimeOffRequest{
		Status: model.TimeOffStatusApproved,
	}); err != nil {
		t.Fatalf("review should succeed: %v", err)
	}

	stored, _ := userRepo.GetByID(context.Background(), user.UserID)
	if stored.PTOBalance != 40 {
		t.Errorf("sick leave must not deduct pto, got %v", stored.PTOBalance)
	}
}

func TestTimeOffService_Review_AlreadyReviewed(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	seedEmployee(userRepo, testUser, 40)

	created, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-07",
		HoursRequested: 8,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	if _, err := svc.Review(context.Background(), testCompany, "admin@acme.test", created.ID, &dto.ReviewTimeOffRequest{
		Status: model.TimeOffStatusApproved,
	}); err != nil {
		t.Fatalf("first review should succeed: %v", err)
	}

	_, err = svc.Review(context.Background(), testCompany, "admin@acme.test", created.ID, &dto.ReviewTimeOffRequest{
		Status: model.TimeOffStatusRejected,
	})
	if !errors.Is(err, ErrTimeOffReviewed) {
		t.Errorf("expected ErrTimeOffReviewed, got %v", err)
	}
}

func TestTimeOffService_Review_WrongCompany(t *testing.T) {
	svc, userRepo, _ := setupTestTimeOffService()
	seedEmployee(userRepo, testUser, 40)

	created, err := svc.Create(context.Background(), testCompany, testUser, &dto.CreateTimeOffRequest{
		Type:           model.TimeOffTypePTO,
		StartDate:      "2026-09-07",
		EndDate:        "2026-09-07",
		HoursRequested: 8,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	_, err = svc.Review(context.Background(), "co-other", "admin@other.test", created.ID, &dto.ReviewTimeOffRequest{
		Status: model.TimeOffStatusApproved,
	})
	if !errors.Is(err, ErrTimeOffNotFound) {
		t.Errorf("expected ErrTimeOffNotFound for cross-company review, got %v", err)
	}
}
