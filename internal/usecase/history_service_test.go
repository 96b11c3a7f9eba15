package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
	"github.com/bissetw-stack/pelham-swimming-app/internal/infrastructure/repository/memory"
)

func seedHistoryRepos() (*memory.SwimmerRepository, *memory.ResultRepository) {
	swimmerRepo := memory.NewSwimmerRepository([]swimmer.Swimmer{
		{ID: "swm-1", FirstName: "Alice", Surname: "Naidoo", DOB: "2015-03-12", Gender: swimmer.GenderFemale, Grade: 4, House: swimmer.HouseBromhead, Active: true},
	}, nil)

	base := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	resultRepo := memory.NewResultRepository([]result.Result{
		{ID: "res-1", SwimmerID: "swm-1", Stroke: result.StrokeFreestyle, TimeSeconds: 50.0, DateSwum: "2026-01-12", Season: 2026, CreatedAt: base},
		{ID: "res-2", SwimmerID: "swm-1", Stroke: result.StrokeFreestyle, TimeSeconds: 48.2, DateSwum: "2026-01-19", Season: 2026, CreatedAt: base.Add(time.Hour)},
		{ID: "res-3", SwimmerID: "swm-1", Stroke: result.StrokeBackstroke, TimeSeconds: 55.1, DateSwum: "2026-01-26", Season: 2026, CreatedAt: base.Add(2 * time.Hour)},
	}, nil)

	return swimmerRepo, resultRepo
}

func TestHistoryService_History_NewestFirst(t *testing.T) {
	swimmerRepo, resultRepo := seedHistoryRepos()
	svc := NewHistoryService(swimmerRepo, resultRepo)

	history, err := svc.History(t.Context(), "swm-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}

	if len(history) != 3 {
		t.Fatalf("expected 3 results, got %d", len(history))
	}
	for i, wantID := range []string{"res-3", "res-2", "res-1"} {
		if history[i].ID != wantID {
			t.Fatalf("row %d: got %s want %s", i, history[i].ID, wantID)
		}
	}
}

func TestHistoryService_History_UnknownSwimmer(t *testing.T) {
	swimmerRepo, resultRepo := seedHistoryRepos()
	svc := NewHistoryService(swimmerRepo, resultRepo)

	_, err := svc.History(t.Context(), "swm-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHistoryService_Reconcile_UpdateAndDelete(t *testing.T) {
	swimmerRepo, resultRepo := seedHistoryRepos()
	svc := NewHistoryService(swimmerRepo, resultRepo)

	outcome, err := svc.Reconcile(t.Context(), "swm-1", []HistoryRow{
		{ResultID: "res-1", RawTime: "47.5", DateSwum: "2026-03-01T00:00:00Z", Stroke: result.StrokeFreestyle},
		{ResultID: "res-3", RawTime: 55.1, DateSwum: "2026-01-26", Stroke: result.StrokeBackstroke},
	})
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	if outcome.Updated != 2 || outcome.Deleted != 1 || len(outcome.Errors) != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}

	remaining, _ := resultRepo.List(t.Context(), result.Filter{SwimmerID: "swm-1"})
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining results, got %d", len(remaining))
	}
	for _, r := range remaining {
		if r.ID == "res-2" {
			t.Fatalf("res-2 should have been deleted")
		}
		if r.ID == "res-1" {
			if r.TimeSeconds != 47.5 {
				t.Fatalf("unexpected updated time: %v", r.TimeSeconds)
			}
			// Timestamps normalize to the plain storage date.
			if r.DateSwum != "2026-03-01" {
				t.Fatalf("unexpected updated date: %q", r.DateSwum)
			}
		}
	}
}

func TestHistoryService_Reconcile_BadRowIsNotDeleted(t *testing.T) {
	swimmerRepo, resultRepo := seedHistoryRepos()
	svc := NewHistoryService(swimmerRepo, resultRepo)

	outcome, err := svc.Reconcile(t.Context(), "swm-1", []HistoryRow{
		{ResultID: "res-1", RawTime: "abc", DateSwum: "2026-01-12", Stroke: result.StrokeFreestyle},
		{ResultID: "res-2", RawTime: 48.2, DateSwum: "2026-01-19", Stroke: result.StrokeFreestyle},
		{ResultID: "res-3", RawTime: 55.1, DateSwum: "2026-01-26", Stroke: result.StrokeBackstroke},
	})
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	if outcome.Updated != 2 || outcome.Deleted != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if len(outcome.Errors) != 1 || outcome.Errors[0].ResultID != "res-1" {
		t.Fatalf("expected one error for res-1, got %+v", outcome.Errors)
	}

	// The bad edit must not turn into a delete.
	remaining, _ := resultRepo.List(t.Context(), result.Filter{SwimmerID: "swm-1"})
	if len(remaining) != 3 {
		t.Fatalf("expected all 3 results kept, got %d", len(remaining))
	}
}

func TestHistoryService_Reconcile_RejectsRowVariants(t *testing.T) {
	swimmerRepo, resultRepo := seedHistoryRepos()
	svc := NewHistoryService(swimmerRepo, resultRepo)

	outcome, err := svc.Reconcile(t.Context(), "swm-1", []HistoryRow{
		{ResultID: "res-unknown", RawTime: 50.0, DateSwum: "2026-01-12", Stroke: result.StrokeFreestyle},
		{ResultID: "res-1", RawTime: -3.0, DateSwum: "2026-01-12", Stroke: result.StrokeFreestyle},
		{ResultID: "res-2", RawTime: 48.2, DateSwum: "12/01/2026", Stroke: result.StrokeFreestyle},
		{ResultID: "res-3", RawTime: 55.1, DateSwum: "2026-01-26", Stroke: result.Stroke("Sidestroke")},
	})
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	if outcome.Updated != 0 {
		t.Fatalf("expected no updates, got %d", outcome.Updated)
	}
	if len(outcome.Errors) != 4 {
		t.Fatalf("expected 4 row errors, got %+v", outcome.Errors)
	}
	// Referenced rows errored in place, so nothing may be deleted.
	if outcome.Deleted != 0 {
		t.Fatalf("expected no deletes, got %d", outcome.Deleted)
	}
}

func TestHistoryService_Reconcile_UnknownSwimmer(t *testing.T) {
	swimmerRepo, resultRepo := seedHistoryRepos()
	svc := NewHistoryService(swimmerRepo, resultRepo)

	_, err := svc.Reconcile(t.Context(), "swm-missing", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
