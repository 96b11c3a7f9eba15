package swimmer

import "context"

// Filter narrows swimmer queries by simple equality predicates. Zero
// values mean "any".
type Filter struct {
	Grade  int
	Gender Gender
}

// Repository describes swimmer persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Swimmer, error)
	GetByID(ctx context.Context, id string) (Swimmer, bool, error)
	Create(ctx context.Context, s Swimmer) (string, error)
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int, error)
}
