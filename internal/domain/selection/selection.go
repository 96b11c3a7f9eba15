// Package selection partitions ranked swimmers into interhouse team
// selections and event heat sheets.
package selection

import (
	"sort"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/ranking"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// DefaultPerHouse is the gala rule: three qualifiers per house per event.
const DefaultPerHouse = 3

// TopN filters the ranked rows per house, preserving the global
// rank-time order, and truncates each house to perHouse entries. A
// house with fewer qualifiers gets a shorter list; a house with none
// gets an empty one, never a missing key.
func TopN(rows []ranking.RankedSwimmer, houses []swimmer.House, perHouse int) map[swimmer.House][]ranking.RankedSwimmer {
	out := make(map[swimmer.House][]ranking.RankedSwimmer, len(houses))
	for _, h := range houses {
		out[h] = []ranking.RankedSwimmer{}
	}

	for _, row := range rows {
		picked, ok := out[row.House]
		if !ok || len(picked) >= perHouse {
			continue
		}
		out[row.House] = append(picked, row)
	}

	return out
}

// HeatSheet builds the finalist pool for one event: each house's top
// perHouse qualifiers, merged and re-sorted globally by rank time with
// positions reassigned. A house's slower third qualifier stays in even
// when another house had a faster fourth; the rule is "perHouse per
// house", not "top N overall".
func HeatSheet(rows []ranking.RankedSwimmer, houses []swimmer.House, perHouse int) []ranking.RankedSwimmer {
	byHouse := TopN(rows, houses, perHouse)

	pool := make([]ranking.RankedSwimmer, 0, len(houses)*perHouse)
	for _, h := range houses {
		pool = append(pool, byHouse[h]...)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].RankTime < pool[j].RankTime
	})
	for i := range pool {
		pool[i].Position = i + 1
	}

	return pool
}
