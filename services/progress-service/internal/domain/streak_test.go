package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestComputeStreak(t *testing.T) {
	asOf := day(2024, time.January, 10, 20)

	tests := []struct {
		name        string
		completions []time.Time
		want        StreakState
	}{
		{
			name: "no completions",
			want: StreakState{},
		},
		{
			name:        "covered through today",
			completions: []time.Time{day(2024, 1, 8, 9), day(2024, 1, 9, 9), day(2024, 1, 10, 7)},
			want:        StreakState{Current: 3, Longest: 3, Alive: true, LastCompletion: "2024-01-10"},
		},
		{
			name:        "today not yet covered keeps yesterday's count",
			completions: []time.Time{day(2024, 1, 8, 9), day(2024, 1, 9, 23)},
			want:        StreakState{Current: 2, Longest: 2, Alive: true, LastCompletion: "2024-01-09"},
		},
		{
			name:        "two days old resets to zero",
			completions: []time.Time{day(2024, 1, 7, 9), day(2024, 1, 8, 9)},
			want:        StreakState{Current: 0, Longest: 2, Alive: false, LastCompletion: "2024-01-08"},
		},
		{
			name:        "several completions on one day count once",
			completions: []time.Time{day(2024, 1, 10, 1), day(2024, 1, 10, 2), day(2024, 1, 10, 3)},
			want:        StreakState{Current: 1, Longest: 1, Alive: true, LastCompletion: "2024-01-10"},
		},
		{
			name:        "gap breaks the run and longest remembers history",
			completions: []time.Time{day(2024, 1, 1, 9), day(2024, 1, 2, 9), day(2024, 1, 3, 9), day(2024, 1, 4, 9), day(2024, 1, 9, 9), day(2024, 1, 10, 9)},
			want:        StreakState{Current: 2, Longest: 4, Alive: true, LastCompletion: "2024-01-10"},
		},
		{
			name:        "future completions are ignored",
			completions: []time.Time{day(2024, 1, 10, 9), day(2024, 1, 12, 9)},
			want:        StreakState{Current: 1, Longest: 1, Alive: true, LastCompletion: "2024-01-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.completions, asOf))
		})
	}
}

func TestComputeStreakSkippedDay(t *testing.T) {
	completions := []time.Time{day(2024, 1, 1, 12), day(2024, 1, 3, 12)}

	got := ComputeStreak(completions, day(2024, 1, 3, 18))

	assert.Equal(t, 1, got.Current)
}

func TestComputeStreakUsesAsOfLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	// 2024-01-10 03:00 UTC is still Jan 9 in UTC-8.
	completions := []time.Time{day(2024, 1, 9, 18), day(2024, 1, 10, 3)}

	got := ComputeStreak(completions, time.Date(2024, 1, 9, 21, 0, 0, 0, loc))

	assert.Equal(t, 1, got.Current)
	assert.Equal(t, "2024-01-09", got.LastCompletion)
}
