package usecase

import (
	"context"
	"time"

	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

type StreakUseCase struct {
	store ProgressStore
}

func NewStreakUseCase(store ProgressStore) *StreakUseCase {
	return &StreakUseCase{store: store}
}

// ComputeStreak derives the streak from every completion of the subject across
// programs. Re-completions count on the day of the first completion.
func (uc *StreakUseCase) ComputeStreak(ctx context.Context, subjectID uuid.UUID, asOf time.Time) (domain.StreakState, error) {
	records, err := uc.store.ListSubjectCompletions(ctx, subjectID)
	if err != nil {
		return domain.StreakState{}, err
	}
	times := make([]time.Time, 0, len(records))
	for _, r := range records {
		times = append(times, r.CompletedAt)
	}
	return domain.ComputeStreak(times, asOf), nil
}
