package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"
	"couplepath/services/progress-service/internal/infrastructure/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	programID  = "reset-5"
	questionID = "questions"
)

var jan10 = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

// newStore seeds a 5 unit program split into two phases with weeks below
// them, and a 7 question rotating program.
func newStore(t *testing.T) *memstore.Store {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	groups := []domain.ProgramGroup{
		{ProgramID: programID, ID: "phase-1", Kind: domain.GroupPhase, Position: 1},
		{ProgramID: programID, ID: "week-1", ParentID: "phase-1", Kind: domain.GroupWeek, Position: 2},
		{ProgramID: programID, ID: "week-2", ParentID: "phase-1", Kind: domain.GroupWeek, Position: 3},
		{ProgramID: programID, ID: "phase-2", Kind: domain.GroupPhase, Position: 4},
		{ProgramID: programID, ID: "week-3", ParentID: "phase-2", Kind: domain.GroupWeek, Position: 5},
	}
	unitGroups := []string{"week-1", "week-1", "week-2", "week-3", "week-3"}
	var units []domain.Unit
	for i, g := range unitGroups {
		units = append(units, domain.Unit{ProgramID: programID, SequenceNumber: i + 1, GroupID: g, Title: fmt.Sprintf("Day %d", i+1)})
	}
	require.NoError(t, s.SeedProgram(ctx, domain.Program{ID: programID, Title: "Reset", Kind: domain.ProgramSequential}, groups, units))

	var questions []domain.Unit
	for i := 1; i <= 7; i++ {
		questions = append(questions, domain.Unit{ProgramID: questionID, SequenceNumber: i, Title: fmt.Sprintf("Question %d", i)})
	}
	require.NoError(t, s.SeedProgram(ctx, domain.Program{ID: questionID, Title: "Daily questions", Kind: domain.ProgramRotating}, nil, questions))
	return s
}

func newProgression(t *testing.T, s *memstore.Store, milestones usecase.MilestoneChecker) *usecase.ProgressionUseCase {
	t.Helper()
	return usecase.NewProgressionUseCase(s, s, milestones, logger.Nop())
}

type fakeMilestones struct {
	ids []string
	err error
}

func (f fakeMilestones) CheckMilestones(context.Context, uuid.UUID) ([]string, error) {
	return f.ids, f.err
}

type notification struct {
	recipient uuid.UUID
	event     string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, recipientID uuid.UUID, eventType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notification{recipientID, eventType})
	return nil
}

// racingStore lets a concurrent writer advance the enrollment right after the
// engine has read it.
type racingStore struct {
	usecase.ProgressStore
}

func (s racingStore) Transaction(ctx context.Context, fn func(tx usecase.ProgressStore) error) error {
	return s.ProgressStore.Transaction(ctx, func(tx usecase.ProgressStore) error {
		return fn(racingTx{tx})
	})
}

type racingTx struct {
	usecase.ProgressStore
}

func (t racingTx) LockLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	e, err := t.ProgressStore.LockLatestEnrollment(ctx, subjectID, programID)
	if err != nil {
		return nil, err
	}
	if err := t.ProgressStore.UpsertEnrollmentPosition(ctx, e.ID, e.CurrentPosition+1, e.CurrentPosition, e.Status, time.Now()); err != nil {
		return nil, errors.Join(errors.New("racing writer"), err)
	}
	return e, nil
}
