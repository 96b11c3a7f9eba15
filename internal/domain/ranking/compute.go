package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// Compute joins swimmers and results on swimmer identity, groups the
// joined rows per swimmer, reduces each group to one rank time under
// the given policy, and returns the rows sorted fastest first with
// 1-based positions.
//
// Grouping is by swimmer ID; name and house on each row come from the
// swimmer record, so two swimmers sharing a name stay distinct.
// Results referencing a swimmer outside the input set are dropped by
// the inner join without error or warning.
//
// An unknown policy panics: policy values are produced by this package
// and an unrecognized one is a programming error. n only applies to
// PolicyAverageLastN and must be validated by the caller beforehand.
func Compute(swimmers []swimmer.Swimmer, results []result.Result, policy Policy, n int) Table {
	if _, ok := AllPolicies[policy]; !ok {
		panic(fmt.Sprintf("ranking: unknown policy %q", policy))
	}

	if len(swimmers) == 0 {
		return Table{Empty: EmptyNoSwimmers}
	}
	if len(results) == 0 {
		return Table{Empty: EmptyNoResults}
	}

	known := make(map[string]struct{}, len(swimmers))
	for _, s := range swimmers {
		known[s.ID] = struct{}{}
	}

	groups := make(map[string][]result.Result, len(swimmers))
	for _, r := range results {
		if _, ok := known[r.SwimmerID]; !ok {
			continue
		}
		groups[r.SwimmerID] = append(groups[r.SwimmerID], r)
	}
	if len(groups) == 0 {
		return Table{Empty: EmptyNoOverlap}
	}

	// Iterate the swimmer slice rather than the group map so the
	// pre-sort row order is deterministic; the stable sort below keeps
	// it for equal rank times.
	rows := make([]RankedSwimmer, 0, len(groups))
	for _, s := range swimmers {
		group, ok := groups[s.ID]
		if !ok {
			continue
		}

		rankTime, note := reduce(group, policy, n)
		rows = append(rows, RankedSwimmer{
			SwimmerID: s.ID,
			FirstName: s.FirstName,
			Surname:   s.Surname,
			House:     s.House,
			RankTime:  rankTime,
			Note:      note,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RankTime < rows[j].RankTime
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return Table{Rows: rows}
}

// reduce collapses one swimmer's group of results to a rank time and a
// policy-dependent note. Rounding to two decimals happens here and
// nowhere earlier.
func reduce(group []result.Result, policy Policy, n int) (float64, string) {
	switch policy {
	case PolicyBestTime:
		best := group[0].TimeSeconds
		for _, r := range group[1:] {
			if r.TimeSeconds < best {
				best = r.TimeSeconds
			}
		}
		return roundTime(best), fmt.Sprintf("Best of %d", len(group))

	case PolicyLastSwim:
		sortByRecency(group)
		return roundTime(group[0].TimeSeconds), fmt.Sprintf("Date: %s", group[0].DateSwum)

	case PolicyAverageLastN:
		sortByRecency(group)
		used := group
		if len(used) > n {
			used = used[:n]
		}
		var sum float64
		for _, r := range used {
			sum += r.TimeSeconds
		}
		return roundTime(sum / float64(len(used))), fmt.Sprintf("Avg of %d", len(used))
	}

	panic(fmt.Sprintf("ranking: unknown policy %q", policy))
}

// sortByRecency orders a group newest swim first. Equal dates fall back
// to the server-assigned creation timestamp, then the record ID, so the
// last-swim pick does not depend on store iteration order.
func sortByRecency(group []result.Result) {
	sort.SliceStable(group, func(i, j int) bool {
		if group[i].DateSwum != group[j].DateSwum {
			return group[i].DateSwum > group[j].DateSwum
		}
		if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
			return group[i].CreatedAt.After(group[j].CreatedAt)
		}
		return group[i].ID > group[j].ID
	})
}

// roundTime rounds half away from zero to two decimals. Idempotent:
// re-rounding an already rounded time is a no-op.
func roundTime(t float64) float64 {
	return math.Round(t*100) / 100
}
