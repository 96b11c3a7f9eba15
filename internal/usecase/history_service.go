package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/entry"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

const reconcileMaxInFlight = 4

// HistoryService serves the per-swimmer result history editor and
// reconciles an edited snapshot back into individual record writes.
type HistoryService struct {
	swimmerRepo swimmer.Repository
	resultRepo  result.Repository
}

func NewHistoryService(swimmerRepo swimmer.Repository, resultRepo result.Repository) *HistoryService {
	return &HistoryService{
		swimmerRepo: swimmerRepo,
		resultRepo:  resultRepo,
	}
}

// HistoryRow is one row of the edited snapshot. The editor allows
// row-level edits and deletion but not insertion, so every row must
// reference an existing result by ID.
type HistoryRow struct {
	ResultID string
	RawTime  any
	DateSwum string
	Stroke   result.Stroke
}

// RowError reports a single rejected row; the rest of the snapshot
// still reconciles.
type RowError struct {
	ResultID string
	Message  string
}

// ReconcileOutcome reports how a snapshot save went. Updates and
// deletes are independent store calls, so partial completion is
// possible and shows up in the counts.
type ReconcileOutcome struct {
	Updated int
	Deleted int
	Errors  []RowError
}

// History returns a swimmer's full result history, newest swim first.
func (s *HistoryService) History(ctx context.Context, swimmerID string) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.History")
	defer span.End()

	if swimmerID == "" {
		return nil, fmt.Errorf("%w: swimmer id is required", ErrInvalidInput)
	}

	_, exists, err := s.swimmerRepo.GetByID(ctx, swimmerID)
	if err != nil {
		return nil, markStore(fmt.Errorf("get swimmer: %w", err))
	}
	if !exists {
		return nil, fmt.Errorf("%w: swimmer=%s", ErrNotFound, swimmerID)
	}

	history, err := s.resultRepo.List(ctx, result.Filter{SwimmerID: swimmerID})
	if err != nil {
		return nil, markStore(fmt.Errorf("list results: %w", err))
	}

	sort.SliceStable(history, func(i, j int) bool {
		if history[i].DateSwum != history[j].DateSwum {
			return history[i].DateSwum > history[j].DateSwum
		}
		if !history[i].CreatedAt.Equal(history[j].CreatedAt) {
			return history[i].CreatedAt.After(history[j].CreatedAt)
		}
		return history[i].ID > history[j].ID
	})

	return history, nil
}

// Reconcile writes an edited history snapshot back to the store. Every
// snapshot row updates its result unconditionally (last-write-wins, no
// conflict detection); results present originally but missing from the
// snapshot are explicitly deleted. Unlike batch entry, a time value
// that fails numeric coercion is a hard error for that row.
func (s *HistoryService) Reconcile(ctx context.Context, swimmerID string, edited []HistoryRow) (ReconcileOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.Reconcile")
	defer span.End()

	if swimmerID == "" {
		return ReconcileOutcome{}, fmt.Errorf("%w: swimmer id is required", ErrInvalidInput)
	}

	_, exists, err := s.swimmerRepo.GetByID(ctx, swimmerID)
	if err != nil {
		return ReconcileOutcome{}, markStore(fmt.Errorf("get swimmer: %w", err))
	}
	if !exists {
		return ReconcileOutcome{}, fmt.Errorf("%w: swimmer=%s", ErrNotFound, swimmerID)
	}

	original, err := s.resultRepo.List(ctx, result.Filter{SwimmerID: swimmerID})
	if err != nil {
		return ReconcileOutcome{}, markStore(fmt.Errorf("list results: %w", err))
	}

	originalIDs := make(map[string]struct{}, len(original))
	for _, r := range original {
		originalIDs[r.ID] = struct{}{}
	}

	var outcome ReconcileOutcome

	type updateOp struct {
		id     string
		fields result.Update
	}
	updates := make([]updateOp, 0, len(edited))
	seen := make(map[string]struct{}, len(edited))

	for _, row := range edited {
		if _, ok := originalIDs[row.ResultID]; !ok {
			outcome.Errors = append(outcome.Errors, RowError{
				ResultID: row.ResultID,
				Message:  "row does not reference an existing result",
			})
			continue
		}
		seen[row.ResultID] = struct{}{}

		timeVal, coerceErr := entry.CoerceTime(row.RawTime, entry.ModeHistoryEdit)
		if coerceErr != nil {
			outcome.Errors = append(outcome.Errors, RowError{ResultID: row.ResultID, Message: coerceErr.Error()})
			continue
		}
		if timeVal <= 0 {
			outcome.Errors = append(outcome.Errors, RowError{
				ResultID: row.ResultID,
				Message:  "time must be greater than zero",
			})
			continue
		}

		date, dateErr := normalizeDate(row.DateSwum)
		if dateErr != nil {
			outcome.Errors = append(outcome.Errors, RowError{ResultID: row.ResultID, Message: dateErr.Error()})
			continue
		}

		if !result.ValidStroke(row.Stroke) {
			outcome.Errors = append(outcome.Errors, RowError{
				ResultID: row.ResultID,
				Message:  fmt.Sprintf("unknown stroke %q", row.Stroke),
			})
			continue
		}

		updates = append(updates, updateOp{
			id: row.ResultID,
			fields: result.Update{
				TimeSeconds: timeVal,
				DateSwum:    date,
				Stroke:      row.Stroke,
			},
		})
	}

	// Rows the editor removed: everything stored that the snapshot no
	// longer mentions. Rows that errored above are still in `seen`, so
	// a bad edit never turns into a delete.
	deletions := make([]string, 0)
	for _, r := range original {
		if _, ok := seen[r.ID]; !ok {
			deletions = append(deletions, r.ID)
		}
	}

	type opOutcome struct {
		resultID string
		deleted  bool
		err      error
	}

	writes := pool.NewWithResults[opOutcome]().WithMaxGoroutines(reconcileMaxInFlight)
	for _, op := range updates {
		op := op
		writes.Go(func() opOutcome {
			return opOutcome{resultID: op.id, err: s.resultRepo.Update(ctx, op.id, op.fields)}
		})
	}
	for _, id := range deletions {
		id := id
		writes.Go(func() opOutcome {
			return opOutcome{resultID: id, deleted: true, err: s.resultRepo.Delete(ctx, id)}
		})
	}

	for _, op := range writes.Wait() {
		if op.err != nil {
			outcome.Errors = append(outcome.Errors, RowError{ResultID: op.resultID, Message: op.err.Error()})
			continue
		}
		if op.deleted {
			outcome.Deleted++
		} else {
			outcome.Updated++
		}
	}

	return outcome, nil
}

// normalizeDate coerces a submitted calendar date to the exact
// YYYY-MM-DD storage form. The editor may hand back either the storage
// string or a full timestamp; anything else is rejected.
func normalizeDate(raw string) (string, error) {
	for _, layout := range []string{result.DateLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(result.DateLayout), nil
		}
	}
	return "", fmt.Errorf("date %q is not a valid calendar date", raw)
}
