package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUnitForDateIsDeterministicAndInRange(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, total := range []int{1, 2, 7, 30, 365} {
		for i := 0; i < 800; i++ {
			date := start.AddDate(0, 0, i)

			first, err := SelectUnitForDate(date, total)
			require.NoError(t, err)
			second, err := SelectUnitForDate(date.Add(17*time.Hour), total)
			require.NoError(t, err)

			assert.Equal(t, first, second, "same calendar day must give the same unit")
			assert.GreaterOrEqual(t, first, 1)
			assert.LessOrEqual(t, first, total)
		}
	}
}

func TestSelectUnitForDateUsesNumericDate(t *testing.T) {
	// 20240315 % 7 = 4
	seq, err := SelectUnitForDate(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, seq)
}

func TestSelectUnitForDateRejectsEmptyProgram(t *testing.T) {
	_, err := SelectUnitForDate(time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
