package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProgram(t *testing.T, tx *gorm.DB, n int) string {
	t.Helper()
	id := "test-" + uuid.NewString()[:8]
	groups := []domain.ProgramGroup{{ProgramID: id, ID: "phase-1", Kind: domain.GroupPhase, Position: 1}}
	units := make([]domain.Unit, n)
	for i := range units {
		units[i] = domain.Unit{ProgramID: id, SequenceNumber: i + 1, GroupID: "phase-1", Title: fmt.Sprintf("Day %d", i+1)}
	}
	err := NewCatalogRepository(tx).SeedProgram(context.Background(), domain.Program{ID: id, Title: "T", Kind: domain.ProgramSequential}, groups, units)
	require.NoError(t, err)
	return id
}

func TestCatalogRepository(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewCatalogRepository(tx)
	id := seedProgram(t, tx, 3)

	units, err := repo.ListUnits(ctx, id)
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, "Day 1", units[0].Title)

	_, err = repo.GetUnit(ctx, id, 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.ListUnits(ctx, "missing-program")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Reseeding replaces the units.
	err = repo.SeedProgram(ctx, domain.Program{ID: id, Title: "T2", Kind: domain.ProgramSequential}, nil, []domain.Unit{{ProgramID: id, SequenceNumber: 1}})
	require.NoError(t, err)
	units, err = repo.ListUnits(ctx, id)
	require.NoError(t, err)
	assert.Len(t, units, 1)
}

func TestProgressRepositoryCompareAndSet(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewProgressRepository(tx)
	programID := seedProgram(t, tx, 3)

	e := &domain.Enrollment{ID: uuid.New(), SubjectID: uuid.New(), ProgramID: programID, CurrentPosition: 1, Status: domain.EnrollmentActive}
	require.NoError(t, repo.CreateEnrollment(ctx, e))

	now := time.Now().UTC()
	require.NoError(t, repo.UpsertEnrollmentPosition(ctx, e.ID, 2, 1, domain.EnrollmentActive, now))
	err := repo.UpsertEnrollmentPosition(ctx, e.ID, 2, 1, domain.EnrollmentActive, now)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)

	err = tx.Transaction(func(inner *gorm.DB) error {
		dup := &domain.Enrollment{ID: uuid.New(), SubjectID: e.SubjectID, ProgramID: programID, CurrentPosition: 1, Status: domain.EnrollmentActive}
		return NewProgressRepository(inner).CreateEnrollment(ctx, dup)
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
}

func TestProgressRepositoryUpsertCompletionKeepsFirstTime(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewProgressRepository(tx)
	enrollmentID := uuid.New()
	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	rec := &domain.CompletionRecord{EnrollmentID: enrollmentID, SequenceNumber: 1, SubjectID: uuid.New(), ProgramID: "p", CompletedAt: first, UpdatedAt: first}
	require.NoError(t, repo.UpsertCompletion(ctx, rec))

	again := *rec
	again.CompletedAt = first.Add(time.Hour)
	again.UpdatedAt = first.Add(time.Hour)
	again.Note = "second"
	require.NoError(t, repo.UpsertCompletion(ctx, &again))

	recs, err := repo.ListCompletions(ctx, enrollmentID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, first.Equal(recs[0].CompletedAt))
	assert.Equal(t, "second", recs[0].Note)
}

func TestResponseRepositoryFirstWriteWins(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewResponseRepository(tx)

	r := &domain.PairedResponse{ID: uuid.New(), PairID: uuid.New(), QuestionID: 2, Day: "2024-01-10", ResponderID: uuid.New(), ResponseText: "first"}
	require.NoError(t, repo.InsertResponse(ctx, r))

	dup := *r
	dup.ID = uuid.New()
	dup.ResponseText = "second"
	assert.ErrorIs(t, repo.InsertResponse(ctx, &dup), domain.ErrAlreadyAnswered)

	list, err := repo.ListResponses(ctx, r.PairID, 2, "2024-01-10")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].ResponseText)
}

func TestCoupleRepository(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewCoupleRepository(tx)

	c := &domain.Couple{ID: uuid.New(), PartnerAID: uuid.New(), PartnerBID: uuid.New()}
	require.NoError(t, repo.CreateCouple(ctx, c))

	got, err := repo.GetCoupleByMember(ctx, c.PartnerBID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = repo.GetCouple(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// PartnerB of one couple cannot become PartnerA of another.
	err = tx.Transaction(func(inner *gorm.DB) error {
		return NewCoupleRepository(inner).CreateCouple(ctx, &domain.Couple{ID: uuid.New(), PartnerAID: c.PartnerBID, PartnerBID: uuid.New()})
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyLinked)
}

// committed runs against the shared database without a wrapping transaction,
// for tests that need real row locks. Rows are removed on cleanup.
func committed(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t)
}

func TestConcurrentLinksShareAMember(t *testing.T) {
	db := committed(t)
	ctx := context.Background()
	shared := uuid.New()
	uc := usecase.NewCoupleUseCase(NewCoupleRepository(db), logger.Nop())

	var (
		wg   sync.WaitGroup
		errs = make([]error, 8)
	)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Link(ctx, uuid.New(), shared)
		}(i)
	}
	wg.Wait()

	linked := 0
	for _, err := range errs {
		if err == nil {
			linked++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadyLinked)
	}
	assert.Equal(t, 1, linked)

	c, err := NewCoupleRepository(db).GetCoupleByMember(ctx, shared)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Where("couple_id = ?", c.ID).Delete(&domain.CoupleMember{})
		db.Delete(&domain.Couple{}, "id = ?", c.ID)
	})
}

func TestProgressionAgainstPostgres(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	programID := seedProgram(t, tx, 3)
	uc := usecase.NewProgressionUseCase(NewCatalogRepository(tx), NewProgressRepository(tx), nil, logger.Nop())
	subject := uuid.New()
	day := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	_, err := uc.Enroll(ctx, subject, programID, day)
	require.NoError(t, err)

	for seq := 1; seq <= 3; seq++ {
		for i := 0; i < 2; i++ {
			_, err := uc.CompleteUnit(ctx, usecase.CompleteUnitInput{SubjectID: subject, ProgramID: programID, SequenceNumber: seq, At: day})
			require.NoError(t, err)
		}
	}

	p, err := uc.GetProgress(ctx, subject, programID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.CompletedUnits)
	assert.Equal(t, domain.EnrollmentCompleted, p.Enrollment.Status)
	assert.Equal(t, 3, p.Enrollment.CurrentPosition)
}

func TestConcurrentCompletionOfLastUnits(t *testing.T) {
	db := committed(t)
	ctx := context.Background()
	const total = 3
	programID := seedProgram(t, db, total)
	t.Cleanup(func() {
		db.Where("program_id = ?", programID).Delete(&domain.CompletionRecord{})
		db.Where("program_id = ?", programID).Delete(&domain.Enrollment{})
		db.Where("program_id = ?", programID).Delete(&domain.Unit{})
		db.Where("program_id = ?", programID).Delete(&domain.ProgramGroup{})
		db.Delete(&domain.Program{}, "id = ?", programID)
	})

	uc := usecase.NewProgressionUseCase(NewCatalogRepository(db), NewProgressRepository(db), nil, logger.Nop())
	day := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	for round := 0; round < 10; round++ {
		subject := uuid.New()
		_, err := uc.Enroll(ctx, subject, programID, day)
		require.NoError(t, err)
		for seq := 1; seq < total-1; seq++ {
			_, err := uc.CompleteUnit(ctx, usecase.CompleteUnitInput{SubjectID: subject, ProgramID: programID, SequenceNumber: seq, At: day})
			require.NoError(t, err)
		}

		// Position is total-1: complete it and the last unit at once.
		var wg sync.WaitGroup
		for _, seq := range []int{total - 1, total} {
			wg.Add(1)
			go func(seq int) {
				defer wg.Done()
				_, err := uc.CompleteUnit(ctx, usecase.CompleteUnitInput{SubjectID: subject, ProgramID: programID, SequenceNumber: seq, At: day})
				assert.NoError(t, err)
			}(seq)
		}
		wg.Wait()

		p, err := uc.GetProgress(ctx, subject, programID)
		require.NoError(t, err)
		assert.Equal(t, total, p.CompletedUnits)
		assert.Equal(t, total, p.Enrollment.CurrentPosition)
		assert.Equal(t, domain.EnrollmentCompleted, p.Enrollment.Status, "round %d", round)
	}
}
