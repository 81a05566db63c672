package usecase_test

import (
	"context"
	"testing"
	"time"

	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreakSkippedDayBreaksContinuity(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := newProgression(t, s, nil)
	subject := uuid.New()
	_, err := uc.Enroll(ctx, subject, programID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	complete(t, uc, subject, 1, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	complete(t, uc, subject, 2, time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC))

	got, err := usecase.NewStreakUseCase(s).ComputeStreak(ctx, subject, time.Date(2024, 1, 3, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Current)
	assert.True(t, got.Alive)
}

func TestStreakCountsConsecutiveDaysAndExpires(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := newProgression(t, s, nil)
	streaks := usecase.NewStreakUseCase(s)
	subject := uuid.New()
	_, err := uc.Enroll(ctx, subject, programID, jan10)
	require.NoError(t, err)

	for seq := 1; seq <= 3; seq++ {
		complete(t, uc, subject, seq, jan10.AddDate(0, 0, seq-1))
	}

	got, err := streaks.ComputeStreak(ctx, subject, jan10.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, domain.StreakState{Current: 3, Longest: 3, Alive: true, LastCompletion: "2024-01-12"}, got)

	got, err = streaks.ComputeStreak(ctx, subject, jan10.AddDate(0, 0, 4))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Current)
	assert.Equal(t, 3, got.Longest)
}
