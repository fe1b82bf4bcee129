package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yasiralharfash/chronos/config"
	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/model"
	"github.com/yasiralharfash/chronos/internal/repository"
	"github.com/yasiralharfash/chronos/pkg/jwt"
)

// ── test helpers ──

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-16-chars",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			InvitationTTL:   7 * 24 * time.Hour,
		},
	}
}

func setupTestAuthService() (AuthService, *repository.Repository, *mockUserRepo) {
	repo, _, _, userRepo := newMockRepository()
	cfg := testConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, repo, userRepo
}

func seedUser(userRepo *mockUserRepo, email, password string, active bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	companyID := testCompany
	user := &model.User{
		Email:        email,
		FullName:     "Seed User",
		PasswordHash: string(hash),
		CompanyID:    &companyID,
		JobRole:      "employee",
		IsActive:     active,
	}
	_ = userRepo.Create(context.Background(), user)
	return user
}

func seedInvitation(repo *repository.Repository, token string, expiresAt time.Time, status string) *model.Invitation {
	inv := &model.Invitation{
		CompanyID:       testCompany,
		Email:           "newhire@acme.test",
		FullName:        "New Hire",
		JobRole:         "employee",
		HourlyRate:      21.50,
		InvitationToken: token,
		Status:          status,
		ExpiresAt:       expiresAt,
	}
	_ = repo.Invitation.Create(context.Background(), inv)
	return inv
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	seedUser(userRepo, testUser, "hunter2hunter2", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if resp.User.Email != testUser {
		t.Errorf("expected user email %s, got %s", testUser, resp.User.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	seedUser(userRepo, testUser, "hunter2hunter2", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "not-the-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@acme.test",
		Password: "hunter2hunter2",
	})
	// unknown email and wrong password are indistinguishable to the caller
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	seedUser(userRepo, testUser, "hunter2hunter2", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "hunter2hunter2",
	})
	if !errors.Is(err, ErrUserInactive) {
		t.Errorf("expected ErrUserInactive, got %v", err)
	}
}

// ── Register ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, userRepo := setupTestAuthService()
	seedInvitation(repo, "tok-valid", time.Now().Add(time.Hour), model.InvitationStatusPending)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-valid",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register should succeed: %v", err)
	}
	if resp.User.Email != "newhire@acme.test" {
		t.Errorf("expected invited email, got %s", resp.User.Email)
	}

	user, err := userRepo.GetByEmail(context.Background(), "newhire@acme.test")
	if err != nil {
		t.Fatalf("user should exist after register: %v", err)
	}
	if user.CompanyID == nil || *user.CompanyID != testCompany {
		t.Error("user should join the inviting company")
	}
	if user.HourlyRate != 21.50 {
		t.Errorf("expected hourly rate from invitation, got %v", user.HourlyRate)
	}
}

func TestAuthService_Register_MarksInvitationAccepted(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	inv := seedInvitation(repo, "tok-valid", time.Now().Add(time.Hour), model.InvitationStatusPending)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-valid",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	}); err != nil {
		t.Fatalf("register should succeed: %v", err)
	}

	stored, err := repo.Invitation.GetByID(context.Background(), inv.InvitationID)
	if err != nil {
		t.Fatalf("invitation should still exist: %v", err)
	}
	if stored.Status != model.InvitationStatusAccepted {
		t.Errorf("expected accepted status, got %s", stored.Status)
	}
	if stored.AcceptedAt == nil {
		t.Error("expected accepted_at to be set")
	}
}

func TestAuthService_Register_ExpiredInvitation(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedInvitation(repo, "tok-expired", time.Now().Add(-time.Hour), model.InvitationStatusPending)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-expired",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	})
	if !errors.Is(err, ErrInviteInvalid) {
		t.Errorf("expected ErrInviteInvalid, got %v", err)
	}
}

func TestAuthService_Register_UnknownToken(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-missing",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	})
	if !errors.Is(err, ErrInviteInvalid) {
		t.Errorf("expected ErrInviteInvalid, got %v", err)
	}
}

func TestAuthService_Register_RevokedInvitation(t *testing.T) {
	svc, repo, _ := setupTestAuthService()
	seedInvitation(repo, "tok-revoked", time.Now().Add(time.Hour), model.InvitationStatusRevoked)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-revoked",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	})
	if !errors.Is(err, ErrInviteInvalid) {
		t.Errorf("expected ErrInviteInvalid, got %v", err)
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, repo, userRepo := setupTestAuthService()
	seedInvitation(repo, "tok-valid", time.Now().Add(time.Hour), model.InvitationStatusPending)
	seedUser(userRepo, "newhire@acme.test", "hunter2hunter2", true)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-valid",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_AppliesPreregistration(t *testing.T) {
	svc, repo, userRepo := setupTestAuthService()
	seedInvitation(repo, "tok-valid", time.Now().Add(time.Hour), model.InvitationStatusPending)

	deptID := "dept-ops"
	prereg := &model.PreregisteredEmployee{
		CompanyID:    testCompany,
		Email:        "newhire@acme.test",
		FullName:     "New Hire",
		DepartmentID: &deptID,
		HourlyRate:   25.00,
		PTOBalance:   40,
		JobRole:      "manager",
		Status:       model.PreregStatusPending,
	}
	_ = repo.Preregistered.Create(context.Background(), prereg)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		InvitationToken: "tok-valid",
		FullName:        "New Hire",
		Password:        "hunter2hunter2",
	}); err != nil {
		t.Fatalf("register should succeed: %v", err)
	}

	user, err := userRepo.GetByEmail(context.Background(), "newhire@acme.test")
	if err != nil {
		t.Fatalf("user should exist: %v", err)
	}
	if user.HourlyRate != 25.00 {
		t.Errorf("expected preregistered rate 25.00, got %v", user.HourlyRate)
	}
	if user.PTOBalance != 40 {
		t.Errorf("expected preregistered pto balance 40, got %v", user.PTOBalance)
	}
	if user.JobRole != "manager" {
		t.Errorf("expected preregistered job role, got %s", user.JobRole)
	}

	stored, err := repo.Preregistered.GetPendingByEmail(context.Background(), testCompany, "newhire@acme.test")
	if err == nil && stored.Status == model.PreregStatusPending {
		t.Error("preregistration should be activated after register")
	}
}

// ── ChangePassword ──

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	user := seedUser(userRepo, testUser, "hunter2hunter2", true)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "hunter2hunter2",
		NewPassword: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("change password should succeed: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "correct-horse-battery",
	}); err != nil {
		t.Errorf("login with new password should succeed: %v", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "hunter2hunter2",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login with old password should fail, got %v", err)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	user := seedUser(userRepo, testUser, "hunter2hunter2", true)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "correct-horse-battery",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

// ── Refresh ──

func TestAuthService_Refresh(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	seedUser(userRepo, testUser, "hunter2hunter2", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("login should succeed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("refresh should succeed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, userRepo := setupTestAuthService()
	seedUser(userRepo, testUser, "hunter2hunter2", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    testUser,
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("login should succeed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	}); err == nil {
		t.Error("an access token must not pass as a refresh token")
	}
}

func TestAuthService_Logout_NoRedisIsNoOp(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(15*time.Minute)); err != nil {
		t.Errorf("logout without redis should degrade to a no-op, got %v", err)
	}
}
