package memory

import (
	"time"

	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/result"
	"github.com/bissetw-stack/pelham-swimming-app/internal/domain/swimmer"
)

// Dev-mode seed: a small grade 4 girls pool with a freestyle history,
// enough to exercise rankings and team selection without a database.
func SeedSwimmers() []swimmer.Swimmer {
	return []swimmer.Swimmer{
		{ID: "swm-001", FirstName: "Alice", Surname: "Naidoo", DOB: "2015-03-12", Gender: swimmer.GenderFemale, Grade: 4, House: swimmer.HouseBromhead, Active: true},
		{ID: "swm-002", FirstName: "Zanele", Surname: "Dlamini", DOB: "2015-07-02", Gender: swimmer.GenderFemale, Grade: 4, House: swimmer.HouseChristie, Active: true},
		{ID: "swm-003", FirstName: "Emma", Surname: "van Wyk", DOB: "2015-01-29", Gender: swimmer.GenderFemale, Grade: 4, House: swimmer.HouseClark, Active: true},
		{ID: "swm-004", FirstName: "Priya", Surname: "Pillay", DOB: "2015-11-15", Gender: swimmer.GenderFemale, Grade: 4, House: swimmer.HouseMelville, Active: true},
		{ID: "swm-005", FirstName: "Hannah", Surname: "Botha", DOB: "2015-05-08", Gender: swimmer.GenderFemale, Grade: 4, House: swimmer.HouseBromhead, Active: true},
		{ID: "swm-006", FirstName: "Lerato", Surname: "Mokoena", DOB: "2014-09-21", Gender: swimmer.GenderMale, Grade: 5, House: swimmer.HouseChristie, Active: true},
	}
}

func SeedResults() []result.Result {
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return []result.Result{
		{ID: "res-001", SwimmerID: "swm-001", Stroke: result.StrokeFreestyle, TimeSeconds: 50.0, DateSwum: "2026-01-12", Season: 2026, Source: "Trials", LoggedBy: "Coach Bennett", CreatedAt: base},
		{ID: "res-002", SwimmerID: "swm-001", Stroke: result.StrokeFreestyle, TimeSeconds: 48.2, DateSwum: "2026-01-26", Season: 2026, Source: "Trials", LoggedBy: "Coach Bennett", CreatedAt: base.Add(1 * time.Minute)},
		{ID: "res-003", SwimmerID: "swm-002", Stroke: result.StrokeFreestyle, TimeSeconds: 47.9, DateSwum: "2026-01-12", Season: 2026, Source: "Trials", LoggedBy: "Coach Bennett", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "res-004", SwimmerID: "swm-003", Stroke: result.StrokeFreestyle, TimeSeconds: 51.4, DateSwum: "2026-01-12", Season: 2026, Source: "Trials", LoggedBy: "Coach Bennett", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "res-005", SwimmerID: "swm-004", Stroke: result.StrokeFreestyle, TimeSeconds: 49.6, DateSwum: "2026-01-19", Season: 2026, Source: "Trials", LoggedBy: "Coach Bennett", CreatedAt: base.Add(4 * time.Minute)},
		{ID: "res-006", SwimmerID: "swm-005", Stroke: result.StrokeFreestyle, TimeSeconds: 52.8, DateSwum: "2026-01-19", Season: 2026, Source: "Trials", LoggedBy: "Coach Bennett", CreatedAt: base.Add(5 * time.Minute)},
	}
}
