package ranking

import "github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"

// Policy selects how a swimmer's time history reduces to one rank time.
type Policy string

const (
	PolicyBestTime     Policy = "best_time"
	PolicyLastSwim     Policy = "last_swim"
	PolicyAverageLastN Policy = "average_last_n"
)

var AllPolicies = map[Policy]struct{}{
	PolicyBestTime:     {},
	PolicyLastSwim:     {},
	PolicyAverageLastN: {},
}

// Bounds for the N parameter of PolicyAverageLastN. Values outside this
// range are a caller validation error, not an engine error.
const (
	MinAverageN = 2
	MaxAverageN = 5
)

// RankedSwimmer is one row of a computed ranking table. It is derived
// fresh per query and never persisted.
type RankedSwimmer struct {
	Position  int
	SwimmerID string
	FirstName string
	Surname   string
	House     swimmer.House
	RankTime  float64
	Note      string
}

// EmptyReason distinguishes the three ways a ranking can come back with
// no rows. Callers surface a different message for each.
type EmptyReason string

const (
	EmptyNone       EmptyReason = ""
	EmptyNoSwimmers EmptyReason = "no_swimmers"
	EmptyNoResults  EmptyReason = "no_results"
	EmptyNoOverlap  EmptyReason = "no_overlap"
)

// Table is the output of one ranking computation.
type Table struct {
	Rows  []RankedSwimmer
	Empty EmptyReason
}
