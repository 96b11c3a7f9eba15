package result

import (
	"fmt"
	"time"
)

// Stroke is one of the four fixed swim styles.
type Stroke string

const (
	StrokeFreestyle    Stroke = "Freestyle"
	StrokeBreaststroke Stroke = "Breaststroke"
	StrokeBackstroke   Stroke = "Backstroke"
	StrokeButterfly    Stroke = "Butterfly"
)

// Strokes lists the strokes in their fixed event order.
var Strokes = []Stroke{StrokeFreestyle, StrokeBreaststroke, StrokeBackstroke, StrokeButterfly}

var strokeSet = map[Stroke]struct{}{
	StrokeFreestyle:    {},
	StrokeBreaststroke: {},
	StrokeBackstroke:   {},
	StrokeButterfly:    {},
}

func ValidStroke(s Stroke) bool {
	_, ok := strokeSet[s]
	return ok
}

// DateLayout is the storage form for swim dates. Dates are persisted as
// plain strings in exactly this layout, never locale-formatted.
const DateLayout = "2006-01-02"

// Result is a single timed swim for one swimmer. Results with a
// non-positive time are never persisted.
type Result struct {
	ID          string
	SwimmerID   string
	Stroke      Stroke
	TimeSeconds float64
	DateSwum    string // YYYY-MM-DD
	Season      int
	Source      string
	LoggedBy    string
	CreatedAt   time.Time // server-assigned, monotonic per write
}

func (r Result) Validate() error {
	if r.SwimmerID == "" {
		return fmt.Errorf("result swimmer id is required")
	}
	if !ValidStroke(r.Stroke) {
		return fmt.Errorf("invalid result stroke: %s", r.Stroke)
	}
	if r.TimeSeconds <= 0 {
		return fmt.Errorf("result time must be greater than zero, got %.2f", r.TimeSeconds)
	}
	if _, err := time.Parse(DateLayout, r.DateSwum); err != nil {
		return fmt.Errorf("result date must be YYYY-MM-DD: %q", r.DateSwum)
	}

	return nil
}

// Update carries the fields the history editor may overwrite on a
// stored result. Writes are last-write-wins.
type Update struct {
	TimeSeconds float64
	DateSwum    string
	Stroke      Stroke
}
