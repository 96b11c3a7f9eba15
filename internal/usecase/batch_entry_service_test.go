package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/infrastructure/repository/memory"
)

func TestBatchEntryService_SubmitBatch_MixedRows(t *testing.T) {
	resultRepo := memory.NewResultRepository(nil, nil)
	svc := NewBatchEntryService(resultRepo)
	svc.now = func() time.Time { return time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC) }

	outcome, err := svc.SubmitBatch(t.Context(), []BatchRow{
		{SwimmerID: "swm-1", RawTime: []any{45.3}},
		{SwimmerID: "swm-2", RawTime: "abc"},
		{SwimmerID: "swm-3", RawTime: 44.0, DNS: true},
		{SwimmerID: "swm-4", RawTime: 0.0},
	}, BatchSubmission{
		Stroke:   result.StrokeFreestyle,
		Operator: "Coach Bennett",
	})
	if err != nil {
		t.Fatalf("submit batch failed: %v", err)
	}

	if outcome.Considered != 4 || outcome.Saved != 1 || outcome.Skipped != 3 || outcome.Failed != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}

	saved, err := resultRepo.List(t.Context(), result.Filter{})
	if err != nil {
		t.Fatalf("list results failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 stored result, got %d", len(saved))
	}

	res := saved[0]
	if res.SwimmerID != "swm-1" || res.TimeSeconds != 45.3 {
		t.Fatalf("unexpected stored result: %+v", res)
	}
	if res.DateSwum != "2026-02-14" {
		t.Fatalf("unexpected date swum: %s", res.DateSwum)
	}
	if res.Season != 2026 {
		t.Fatalf("unexpected season: %d", res.Season)
	}
	if res.Source != "Trials" {
		t.Fatalf("expected default source, got %q", res.Source)
	}
	if res.LoggedBy != "Coach Bennett" {
		t.Fatalf("unexpected logged by: %q", res.LoggedBy)
	}
}

func TestBatchEntryService_SubmitBatch_CustomSource(t *testing.T) {
	resultRepo := memory.NewResultRepository(nil, nil)
	svc := NewBatchEntryService(resultRepo)

	_, err := svc.SubmitBatch(t.Context(), []BatchRow{
		{SwimmerID: "swm-1", RawTime: 45.3},
	}, BatchSubmission{
		Stroke:   result.StrokeBreaststroke,
		Source:   "Friday Gala",
		Operator: "Ms Carter",
	})
	if err != nil {
		t.Fatalf("submit batch failed: %v", err)
	}

	saved, _ := resultRepo.List(t.Context(), result.Filter{})
	if saved[0].Source != "Friday Gala" {
		t.Fatalf("unexpected source: %q", saved[0].Source)
	}
}

func TestBatchEntryService_SubmitBatch_RequiresOperator(t *testing.T) {
	svc := NewBatchEntryService(memory.NewResultRepository(nil, nil))

	_, err := svc.SubmitBatch(t.Context(), []BatchRow{{SwimmerID: "swm-1", RawTime: 45.3}}, BatchSubmission{
		Stroke: result.StrokeFreestyle,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBatchEntryService_SubmitBatch_UnknownStroke(t *testing.T) {
	svc := NewBatchEntryService(memory.NewResultRepository(nil, nil))

	_, err := svc.SubmitBatch(t.Context(), []BatchRow{{SwimmerID: "swm-1", RawTime: 45.3}}, BatchSubmission{
		Stroke:   result.Stroke("Doggy Paddle"),
		Operator: "Ms Carter",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBatchEntryService_SubmitBatch_AllSkipped(t *testing.T) {
	resultRepo := memory.NewResultRepository(nil, nil)
	svc := NewBatchEntryService(resultRepo)

	outcome, err := svc.SubmitBatch(t.Context(), []BatchRow{
		{SwimmerID: "swm-1", RawTime: nil},
		{SwimmerID: "swm-2", DNS: true, RawTime: 50.0},
	}, BatchSubmission{Stroke: result.StrokeButterfly, Operator: "Ms Carter"})
	if err != nil {
		t.Fatalf("submit batch failed: %v", err)
	}

	if outcome.Considered != 2 || outcome.Saved != 0 || outcome.Skipped != 2 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	saved, _ := resultRepo.List(t.Context(), result.Filter{})
	if len(saved) != 0 {
		t.Fatalf("expected no stored results, got %d", len(saved))
	}
}
