package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	idgen "github.com/bissetw-stack/pelham-swimming-app/internal/platform/id"
)

// ResultRepository is the map-backed result store used in dev mode and
// tests. Creation timestamps are assigned from a strictly increasing
// sequence so the last-swim tie-break behaves like the real store.
type ResultRepository struct {
	mu    sync.RWMutex
	byID  map[string]result.Result
	order []string
	seq   int64
	idGen idgen.Generator
	now   func() time.Time
}

func NewResultRepository(seed []result.Result, gen idgen.Generator) *ResultRepository {
	if gen == nil {
		gen = idgen.NewRandomGenerator()
	}

	repo := &ResultRepository{
		byID:  make(map[string]result.Result, len(seed)),
		idGen: gen,
		now:   time.Now,
	}
	for _, r := range seed {
		repo.byID[r.ID] = r
		repo.order = append(repo.order, r.ID)
	}

	return repo
}

func (r *ResultRepository) List(_ context.Context, filter result.Filter) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(r.order))
	for _, id := range r.order {
		res := r.byID[id]
		if filter.Stroke != "" && res.Stroke != filter.Stroke {
			continue
		}
		if filter.SwimmerID != "" && res.SwimmerID != filter.SwimmerID {
			continue
		}
		out = append(out, res)
	}

	return out, nil
}

func (r *ResultRepository) Create(_ context.Context, res result.Result) (string, error) {
	id, err := r.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate result id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	res.ID = id
	res.CreatedAt = r.now().Add(time.Duration(r.seq) * time.Microsecond)
	r.byID[id] = res
	r.order = append(r.order, id)

	return id, nil
}

func (r *ResultRepository) Update(_ context.Context, id string, fields result.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("result %s not found", id)
	}

	res.TimeSeconds = fields.TimeSeconds
	res.DateSwum = fields.DateSwum
	res.Stroke = fields.Stroke
	r.byID[id] = res

	return nil
}

func (r *ResultRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("result %s not found", id)
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
