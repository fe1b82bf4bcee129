package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/internal/dto"
)

func setupTestGeofenceService() (GeofenceService, *mockGeofenceRepo) {
	repo, _, geofenceRepo, _ := newMockRepository()
	svc := NewGeofenceService(repo, zap.NewNop())
	return svc, geofenceRepo
}

func TestGeofenceService_CreateAndList(t *testing.T) {
	svc, _ := setupTestGeofenceService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany, &dto.CreateGeofenceRequest{
		Name:         "HQ",
		Latitude:     40.0,
		Longitude:    -74.0,
		RadiusMeters: 150,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}
	if !created.IsActive {
		t.Error("new fences should default to active")
	}

	fences, err := svc.List(ctx, testCompany, &dto.GeofenceListRequest{})
	if err != nil {
		t.Fatalf("list should succeed: %v", err)
	}
	if len(fences) != 1 || fences[0].RadiusMeters != 150 {
		t.Errorf("unexpected fence list: %+v", fences)
	}
}

func TestGeofenceService_DeactivateRemovesFromAdmission(t *testing.T) {
	svc, geofenceRepo := setupTestGeofenceService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany, &dto.CreateGeofenceRequest{
		Name:         "HQ",
		Latitude:     40.0,
		Longitude:    -74.0,
		RadiusMeters: 150,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	inactive := false
	if _, err := svc.Update(ctx, testCompany, created.ID, &dto.UpdateGeofenceRequest{
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("update should succeed: %v", err)
	}

	active, err := geofenceRepo.ListActive(ctx, testCompany)
	if err != nil {
		t.Fatalf("list active should succeed: %v", err)
	}
	if len(active) != 0 {
		t.Error("deactivated fence must not participate in admission")
	}
}

func TestGeofenceService_WrongCompany(t *testing.T) {
	svc, _ := setupTestGeofenceService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompany, &dto.CreateGeofenceRequest{
		Name:         "HQ",
		Latitude:     40.0,
		Longitude:    -74.0,
		RadiusMeters: 150,
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	if _, err := svc.GetByID(ctx, "co-other", created.ID); !errors.Is(err, ErrGeofenceNotFound) {
		t.Errorf("expected ErrGeofenceNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "co-other", created.ID); !errors.Is(err, ErrGeofenceNotFound) {
		t.Errorf("expected ErrGeofenceNotFound on delete, got %v", err)
	}
}
