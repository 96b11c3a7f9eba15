package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
	idgen "github.com/bissetw-stack/pelham-swimming-app/internal/platform/id"
)

// SwimmerRepository is the map-backed swimmer store used in dev mode
// and tests.
type SwimmerRepository struct {
	mu    sync.RWMutex
	byID  map[string]swimmer.Swimmer
	order []string
	idGen idgen.Generator
}

func NewSwimmerRepository(seed []swimmer.Swimmer, gen idgen.Generator) *SwimmerRepository {
	if gen == nil {
		gen = idgen.NewRandomGenerator()
	}

	repo := &SwimmerRepository{
		byID:  make(map[string]swimmer.Swimmer, len(seed)),
		idGen: gen,
	}
	for _, s := range seed {
		repo.byID[s.ID] = s
		repo.order = append(repo.order, s.ID)
	}

	return repo
}

func (r *SwimmerRepository) List(_ context.Context, filter swimmer.Filter) ([]swimmer.Swimmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]swimmer.Swimmer, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		if filter.Grade != 0 && s.Grade != filter.Grade {
			continue
		}
		if filter.Gender != "" && s.Gender != filter.Gender {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *SwimmerRepository) GetByID(_ context.Context, id string) (swimmer.Swimmer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	return s, ok, nil
}

func (r *SwimmerRepository) Create(_ context.Context, s swimmer.Swimmer) (string, error) {
	id, err := r.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate swimmer id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = id
	r.byID[id] = s
	r.order = append(r.order, id)

	return id, nil
}

func (r *SwimmerRepository) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("swimmer %s not found", id)
	}
	s.Active = active
	r.byID[id] = s

	return nil
}

func (r *SwimmerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
