package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New()
	err := s.SeedProgram(context.Background(),
		domain.Program{ID: "p", Title: "P", Kind: domain.ProgramSequential},
		[]domain.ProgramGroup{{ProgramID: "p", ID: "g2", Position: 2}, {ProgramID: "p", ID: "g1", Position: 1}},
		[]domain.Unit{{ProgramID: "p", SequenceNumber: 2}, {ProgramID: "p", SequenceNumber: 1}},
	)
	require.NoError(t, err)
	return s
}

func TestSeedProgramSortsAndValidates(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	units, err := s.ListUnits(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, 1, units[0].SequenceNumber)

	groups, err := s.ListGroups(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, "g1", groups[0].ID)

	err = s.SeedProgram(ctx, domain.Program{ID: "bad"}, nil, []domain.Unit{{SequenceNumber: 2}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = s.GetUnit(ctx, "p", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	e := &domain.Enrollment{ID: uuid.New(), SubjectID: uuid.New(), ProgramID: "p", CurrentPosition: 1, Status: domain.EnrollmentActive}
	require.NoError(t, s.CreateEnrollment(ctx, e))

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx usecase.ProgressStore) error {
		require.NoError(t, tx.UpsertCompletion(ctx, &domain.CompletionRecord{EnrollmentID: e.ID, SequenceNumber: 1}))
		require.NoError(t, tx.UpsertEnrollmentPosition(ctx, e.ID, 2, 1, domain.EnrollmentActive, time.Now()))
		return boom
	})
	require.ErrorIs(t, err, boom)

	recs, err := s.ListCompletions(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)

	got, err := s.GetActiveEnrollment(ctx, e.SubjectID, "p")
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentPosition)
}

func TestUpsertEnrollmentPositionIsConditional(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	e := &domain.Enrollment{ID: uuid.New(), SubjectID: uuid.New(), ProgramID: "p", CurrentPosition: 1, Status: domain.EnrollmentActive}
	require.NoError(t, s.CreateEnrollment(ctx, e))

	require.NoError(t, s.UpsertEnrollmentPosition(ctx, e.ID, 2, 1, domain.EnrollmentActive, time.Now()))
	err := s.UpsertEnrollmentPosition(ctx, e.ID, 2, 1, domain.EnrollmentActive, time.Now())
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

func TestCreateEnrollmentRejectsSecondActive(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	subject := uuid.New()

	require.NoError(t, s.CreateEnrollment(ctx, &domain.Enrollment{ID: uuid.New(), SubjectID: subject, ProgramID: "p", Status: domain.EnrollmentActive}))
	err := s.CreateEnrollment(ctx, &domain.Enrollment{ID: uuid.New(), SubjectID: subject, ProgramID: "p", Status: domain.EnrollmentActive})
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
}

func TestUpsertCompletionKeepsFirstCompletedAt(t *testing.T) {
	s := New()
	ctx := context.Background()
	id := uuid.New()
	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, s.UpsertCompletion(ctx, &domain.CompletionRecord{EnrollmentID: id, SequenceNumber: 1, CompletedAt: first}))
	require.NoError(t, s.UpsertCompletion(ctx, &domain.CompletionRecord{EnrollmentID: id, SequenceNumber: 1, CompletedAt: first.Add(time.Hour), Note: "n"}))

	recs, err := s.ListCompletions(ctx, id)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, first, recs[0].CompletedAt)
	assert.Equal(t, "n", recs[0].Note)
}

func TestInsertResponseFirstWriteWins(t *testing.T) {
	s := New()
	ctx := context.Background()
	r := domain.PairedResponse{ID: uuid.New(), PairID: uuid.New(), QuestionID: 3, Day: "2024-01-01", ResponderID: uuid.New(), ResponseText: "first"}
	require.NoError(t, s.InsertResponse(ctx, &r))

	again := r
	again.ID = uuid.New()
	again.ResponseText = "second"
	assert.ErrorIs(t, s.InsertResponse(ctx, &again), domain.ErrAlreadyAnswered)

	list, err := s.ListResponses(ctx, r.PairID, 3, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].ResponseText)
}

func TestCreateCoupleRejectsLinkedMember(t *testing.T) {
	s := New()
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, s.CreateCouple(ctx, &domain.Couple{ID: uuid.New(), PartnerAID: a, PartnerBID: b}))
	assert.ErrorIs(t, s.CreateCouple(ctx, &domain.Couple{ID: uuid.New(), PartnerAID: c, PartnerBID: b}), domain.ErrAlreadyLinked)

	got, err := s.GetCoupleByMember(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, a, got.PartnerAID)
}
