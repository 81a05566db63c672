package domain

import (
	"sort"
	"time"
)

type StreakState struct {
	Current int
	Longest int
	// Alive is true when the last completion was today or yesterday.
	Alive          bool
	LastCompletion string
}

// ComputeStreak counts consecutive covered calendar days ending today or
// yesterday. Days are taken in asOf's location. Completions after asOf are ignored.
func ComputeStreak(completions []time.Time, asOf time.Time) StreakState {
	loc := asOf.Location()
	today := StartOfDay(asOf)

	covered := make(map[string]bool, len(completions))
	for _, c := range completions {
		day := StartOfDay(c.In(loc))
		if day.After(today) {
			continue
		}
		covered[DayKey(day)] = true
	}
	if len(covered) == 0 {
		return StreakState{}
	}

	state := StreakState{Longest: longestRun(covered, loc)}

	var last time.Time
	for key := range covered {
		d, _ := time.ParseInLocation(DayLayout, key, loc)
		if d.After(last) {
			last = d
		}
	}
	state.LastCompletion = DayKey(last)

	yesterday := today.AddDate(0, 0, -1)
	if !last.Equal(today) && !last.Equal(yesterday) {
		return state
	}
	state.Alive = true
	for day := last; covered[DayKey(day)]; day = day.AddDate(0, 0, -1) {
		state.Current++
	}
	return state
}

func longestRun(covered map[string]bool, loc *time.Location) int {
	days := make([]time.Time, 0, len(covered))
	for key := range covered {
		d, _ := time.ParseInLocation(DayLayout, key, loc)
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
