package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/entry"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
)

const defaultBatchWorkers = 4

// BatchEntryService turns the submitted batch time-entry grid into
// persisted results. Rows that fail value coercion are silently zeroed
// and skipped; only the saved/considered counts come back per batch.
type BatchEntryService struct {
	resultRepo result.Repository
	now        func() time.Time
	workers    int
}

func NewBatchEntryService(resultRepo result.Repository) *BatchEntryService {
	return &BatchEntryService{
		resultRepo: resultRepo,
		now:        time.Now,
		workers:    defaultBatchWorkers,
	}
}

// WithWorkers overrides the write pool size. Values below 1 keep the
// current size.
func (s *BatchEntryService) WithWorkers(n int) *BatchEntryService {
	if n >= 1 {
		s.workers = n
	}
	return s
}

// BatchRow is one grid row as submitted. RawTime can be a number, a
// string, or a single-element list wrapping either; the grid layer is
// not consistent about it.
type BatchRow struct {
	SwimmerID string
	RawTime   any
	DNS       bool
}

// BatchSubmission carries the event context shared by every row plus
// the operator identity threaded from the request.
type BatchSubmission struct {
	Stroke   result.Stroke
	Source   string
	Operator string
}

// BatchOutcome reports a completed batch. Saved can be less than
// Considered minus Skipped when individual store writes failed; writes
// are independent and a late failure does not roll back earlier rows.
type BatchOutcome struct {
	Considered int
	Saved      int
	Skipped    int
	Failed     int
	Errors     []string
}

// ValidateAndBuildResult applies the batch-entry acceptance rule to one
// row: list-wrapped and string values are coerced, coercion failures
// count as 0.0, and the row is accepted iff the coerced time is
// strictly positive and the DNS flag is off.
func (s *BatchEntryService) ValidateAndBuildResult(row BatchRow, sub BatchSubmission) (*result.Result, bool) {
	timeVal, _ := entry.CoerceTime(row.RawTime, entry.ModeBatch)
	if timeVal <= 0 || row.DNS {
		return nil, false
	}

	now := s.now()
	return &result.Result{
		SwimmerID:   row.SwimmerID,
		Stroke:      sub.Stroke,
		TimeSeconds: timeVal,
		DateSwum:    now.Format(result.DateLayout),
		Season:      now.Year(),
		Source:      sub.Source,
		LoggedBy:    sub.Operator,
	}, true
}

// SubmitBatch validates every row and writes the accepted ones through
// a bounded worker pool. Each write is an independent store call; store
// failures are collected per row and reported alongside the counts.
func (s *BatchEntryService) SubmitBatch(ctx context.Context, rows []BatchRow, sub BatchSubmission) (BatchOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchEntryService.SubmitBatch")
	defer span.End()

	if !result.ValidStroke(sub.Stroke) {
		return BatchOutcome{}, fmt.Errorf("%w: unknown stroke %q", ErrInvalidInput, sub.Stroke)
	}
	if strings.TrimSpace(sub.Operator) == "" {
		return BatchOutcome{}, fmt.Errorf("%w: operator is required", ErrInvalidInput)
	}
	if sub.Source == "" {
		sub.Source = "Trials"
	}

	accepted := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		built, ok := s.ValidateAndBuildResult(row, sub)
		if !ok {
			continue
		}
		accepted = append(accepted, *built)
	}

	outcome := BatchOutcome{
		Considered: len(rows),
		Skipped:    len(rows) - len(accepted),
	}
	if len(accepted) == 0 {
		return outcome, nil
	}

	workerCount := s.workers
	if workerCount > len(accepted) {
		workerCount = len(accepted)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchOutcome{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var saved atomic.Int32
	errCh := make(chan string, len(accepted))

	var workers sync.WaitGroup
	for _, r := range accepted {
		r := r
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if _, createErr := s.resultRepo.Create(ctx, r); createErr != nil {
				errCh <- fmt.Sprintf("save result for swimmer %s: %v", r.SwimmerID, createErr)
				return
			}
			saved.Add(1)
		}); err != nil {
			workers.Done()
			errCh <- fmt.Sprintf("submit write for swimmer %s: %v", r.SwimmerID, err)
		}
	}
	workers.Wait()
	close(errCh)

	outcome.Saved = int(saved.Load())
	for msg := range errCh {
		outcome.Errors = append(outcome.Errors, msg)
	}
	outcome.Failed = len(outcome.Errors)

	return outcome, nil
}
