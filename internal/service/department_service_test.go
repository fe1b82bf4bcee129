package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/internal/dto"
)

func setupTestDepartmentService() (DepartmentService, *mockDeptRepo) {
	repo, _, _, _ := newMockRepository()
	svc := NewDepartmentService(repo, zap.NewNop())
	return svc, repo.Department.(*mockDeptRepo)
}

func TestDepartmentService_CreateAndGet(t *testing.T) {
	svc, _ := setupTestDepartmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany, &dto.CreateDepartmentRequest{
		Name:        "Kitchen",
		Description: "Back of house",
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}
	if !created.IsActive {
		t.Error("new departments should default to active")
	}

	got, err := svc.GetByID(ctx, testCompany, created.ID)
	if err != nil {
		t.Fatalf("get should succeed: %v", err)
	}
	if got.Name != "Kitchen" || got.Description != "Back of house" {
		t.Errorf("unexpected department: %+v", got)
	}
}

func TestDepartmentService_List_ExcludesInactiveByDefault(t *testing.T) {
	svc, _ := setupTestDepartmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany, &dto.CreateDepartmentRequest{Name: "Kitchen"})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}
	inactive := false
	if _, err := svc.Update(ctx, testCompany, created.ID, &dto.UpdateDepartmentRequest{IsActive: &inactive}); err != nil {
		t.Fatalf("update should succeed: %v", err)
	}

	depts, err := svc.List(ctx, testCompany, &dto.DepartmentListRequest{})
	if err != nil {
		t.Fatalf("list should succeed: %v", err)
	}
	if len(depts) != 0 {
		t.Errorf("inactive departments must be hidden by default, got %+v", depts)
	}

	all, err := svc.List(ctx, testCompany, &dto.DepartmentListRequest{IncludeInactive: true})
	if err != nil {
		t.Fatalf("list should succeed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected the inactive department when included, got %+v", all)
	}
}

func TestDepartmentService_WrongCompany(t *testing.T) {
	svc, _ := setupTestDepartmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany, &dto.CreateDepartmentRequest{Name: "Kitchen"})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	if _, err := svc.GetByID(ctx, "co-other", created.ID); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}
