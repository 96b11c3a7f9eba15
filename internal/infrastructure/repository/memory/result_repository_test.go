package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
)

type seqGenerator struct {
	n int
}

func (g *seqGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("res-gen-%03d", g.n), nil
}

func TestResultRepository_CreateAssignsMonotonicCreatedAt(t *testing.T) {
	t.Parallel()

	repo := NewResultRepository(nil, &seqGenerator{})

	first, err := repo.Create(t.Context(), result.Result{
		SwimmerID:   "swm-1",
		Stroke:      result.StrokeFreestyle,
		TimeSeconds: 50.12,
		DateSwum:    "2026-02-10",
	})
	require.NoError(t, err)
	require.Equal(t, "res-gen-001", first)

	second, err := repo.Create(t.Context(), result.Result{
		SwimmerID:   "swm-1",
		Stroke:      result.StrokeFreestyle,
		TimeSeconds: 49.80,
		DateSwum:    "2026-02-10",
	})
	require.NoError(t, err)

	rows, err := repo.List(t.Context(), result.Filter{SwimmerID: "swm-1"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, first, rows[0].ID)
	require.Equal(t, second, rows[1].ID)
	require.True(t, rows[1].CreatedAt.After(rows[0].CreatedAt),
		"second write must carry a later CreatedAt than the first")
}

func TestResultRepository_ListFiltersByStrokeAndSwimmer(t *testing.T) {
	t.Parallel()

	seed := []result.Result{
		{ID: "res-1", SwimmerID: "swm-1", Stroke: result.StrokeFreestyle, TimeSeconds: 50.0, DateSwum: "2026-02-01"},
		{ID: "res-2", SwimmerID: "swm-1", Stroke: result.StrokeBackstroke, TimeSeconds: 55.0, DateSwum: "2026-02-01"},
		{ID: "res-3", SwimmerID: "swm-2", Stroke: result.StrokeFreestyle, TimeSeconds: 48.0, DateSwum: "2026-02-01"},
	}
	repo := NewResultRepository(seed, nil)

	rows, err := repo.List(t.Context(), result.Filter{Stroke: result.StrokeFreestyle})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = repo.List(t.Context(), result.Filter{Stroke: result.StrokeFreestyle, SwimmerID: "swm-1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "res-1", rows[0].ID)

	rows, err = repo.List(t.Context(), result.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestResultRepository_UpdateRewritesEditableFields(t *testing.T) {
	t.Parallel()

	seed := []result.Result{
		{ID: "res-1", SwimmerID: "swm-1", Stroke: result.StrokeFreestyle, TimeSeconds: 50.0, DateSwum: "2026-02-01", Source: "Trials"},
	}
	repo := NewResultRepository(seed, nil)

	err := repo.Update(t.Context(), "res-1", result.Update{
		TimeSeconds: 49.25,
		DateSwum:    "2026-02-08",
		Stroke:      result.StrokeBackstroke,
	})
	require.NoError(t, err)

	rows, err := repo.List(t.Context(), result.Filter{SwimmerID: "swm-1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 49.25, rows[0].TimeSeconds)
	require.Equal(t, "2026-02-08", rows[0].DateSwum)
	require.Equal(t, result.StrokeBackstroke, rows[0].Stroke)
	require.Equal(t, "Trials", rows[0].Source, "non-editable fields must survive an update")

	err = repo.Update(t.Context(), "res-missing", result.Update{TimeSeconds: 40})
	require.Error(t, err)
}

func TestResultRepository_DeleteRemovesRowAndOrder(t *testing.T) {
	t.Parallel()

	seed := []result.Result{
		{ID: "res-1", SwimmerID: "swm-1", Stroke: result.StrokeFreestyle, TimeSeconds: 50.0, DateSwum: "2026-02-01"},
		{ID: "res-2", SwimmerID: "swm-1", Stroke: result.StrokeFreestyle, TimeSeconds: 49.0, DateSwum: "2026-02-02"},
	}
	repo := NewResultRepository(seed, nil)

	require.NoError(t, repo.Delete(t.Context(), "res-1"))

	rows, err := repo.List(t.Context(), result.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "res-2", rows[0].ID)

	require.Error(t, repo.Delete(t.Context(), "res-1"), "second delete of the same id must fail")
}
