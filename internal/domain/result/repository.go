package result

import "context"

// Filter narrows result queries by simple equality predicates. Zero
// values mean "any".
type Filter struct {
	Stroke    Stroke
	SwimmerID string
}

// Repository describes result persistence needs from use cases. Each
// write is an independent store call; there is no batching and no
// transaction spanning multiple results.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Result, error)
	Create(ctx context.Context, r Result) (string, error)
	Update(ctx context.Context, id string, fields Update) error
	Delete(ctx context.Context, id string) error
}
