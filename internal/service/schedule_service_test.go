package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/yasiralharfash/chronos/internal/dto"
)

func setupTestScheduleService() ScheduleService {
	repo, _, _, _ := newMockRepository()
	return NewScheduleService(repo, zap.NewNop())
}

func TestScheduleService_Create(t *testing.T) {
	svc := setupTestScheduleService()

	resp, err := svc.Create(context.Background(), testCompany, &dto.CreateScheduleRequest{
		UserEmail: testUser,
		Date:      "2026-03-09",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}
	if resp.Date != "2026-03-09" || resp.StartTime != "09:00" || resp.EndTime != "17:00" {
		t.Errorf("unexpected shift: %+v", resp)
	}
}

func TestScheduleService_Create_RejectsInvertedShift(t *testing.T) {
	svc := setupTestScheduleService()

	_, err := svc.Create(context.Background(), testCompany, &dto.CreateScheduleRequest{
		UserEmail: testUser,
		Date:      "2026-03-09",
		StartTime: "17:00",
		EndTime:   "09:00",
	})
	if !errors.Is(err, ErrShiftOrder) {
		t.Errorf("expected ErrShiftOrder, got %v", err)
	}
}

func TestScheduleService_ListMine_ScopedToCaller(t *testing.T) {
	svc := setupTestScheduleService()
	ctx := context.Background()

	for _, email := range []string{testUser, "other@acme.test"} {
		if _, err := svc.Create(ctx, testCompany, &dto.CreateScheduleRequest{
			UserEmail: email,
			Date:      "2026-03-09",
			StartTime: "09:00",
			EndTime:   "17:00",
		}); err != nil {
			t.Fatalf("create should succeed: %v", err)
		}
	}

	mine, err := svc.ListMine(ctx, testCompany, testUser, &dto.ScheduleListRequest{})
	if err != nil {
		t.Fatalf("list should succeed: %v", err)
	}
	if len(mine) != 1 || mine[0].UserEmail != testUser {
		t.Errorf("expected only the caller's shifts, got %+v", mine)
	}
}

func TestScheduleService_List_DateRange(t *testing.T) {
	svc := setupTestScheduleService()
	ctx := context.Background()

	for _, date := range []string{"2026-03-02", "2026-03-09", "2026-03-16"} {
		if _, err := svc.Create(ctx, testCompany, &dto.CreateScheduleRequest{
			UserEmail: testUser,
			Date:      date,
			StartTime: "09:00",
			EndTime:   "17:00",
		}); err != nil {
			t.Fatalf("create should succeed: %v", err)
		}
	}

	shifts, err := svc.List(ctx, testCompany, &dto.ScheduleListRequest{
		From: "2026-03-08",
		To:   "2026-03-10",
	})
	if err != nil {
		t.Fatalf("list should succeed: %v", err)
	}
	if len(shifts) != 1 || shifts[0].Date != "2026-03-09" {
		t.Errorf("expected only the March 9 shift, got %+v", shifts)
	}
}

func TestScheduleService_Delete_WrongCompany(t *testing.T) {
	svc := setupTestScheduleService()

	resp, err := svc.Create(context.Background(), testCompany, &dto.CreateScheduleRequest{
		UserEmail: testUser,
		Date:      "2026-03-09",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	if err != nil {
		t.Fatalf("create should succeed: %v", err)
	}

	if err := svc.Delete(context.Background(), "co-other", resp.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
}
