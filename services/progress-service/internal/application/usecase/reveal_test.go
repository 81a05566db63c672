package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"
	"couplepath/services/progress-service/internal/infrastructure/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revealFixture struct {
	uc       *usecase.RevealUseCase
	store    *memstore.Store
	notifier *fakeNotifier
	couple   *domain.Couple
}

func newRevealFixture(t *testing.T) revealFixture {
	t.Helper()
	s := newStore(t)
	couple, err := usecase.NewCoupleUseCase(s, logger.Nop()).Link(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	n := &fakeNotifier{}
	return revealFixture{
		uc:       usecase.NewRevealUseCase(s, s, s, n, questionID, logger.Nop()),
		store:    s,
		notifier: n,
		couple:   couple,
	}
}

func TestDailyQuestionIsRotatedByDate(t *testing.T) {
	f := newRevealFixture(t)

	q, err := f.uc.DailyQuestion(context.Background(), jan10)
	require.NoError(t, err)

	want, err := domain.SelectUnitForDate(jan10, 7)
	require.NoError(t, err)
	assert.Equal(t, want, q.SequenceNumber)

	later, err := f.uc.DailyQuestion(context.Background(), jan10.Add(10))
	require.NoError(t, err)
	assert.Equal(t, q.SequenceNumber, later.SequenceNumber)
}

func TestRevealFlow(t *testing.T) {
	ctx := context.Background()
	f := newRevealFixture(t)
	a, b := f.couple.PartnerAID, f.couple.PartnerBID

	view, err := f.uc.GetState(ctx, f.couple.ID, a, jan10)
	require.NoError(t, err)
	assert.Equal(t, domain.RevealUnanswered, view.State)

	view, err = f.uc.Submit(ctx, f.couple.ID, a, jan10, "I felt heard today.", jan10)
	require.NoError(t, err)
	assert.Equal(t, domain.RevealWaiting, view.State)
	assert.Equal(t, "I felt heard today.", view.Mine.ResponseText)
	assert.Nil(t, view.Partner)

	// B cannot peek at A's answer before answering.
	view, err = f.uc.GetState(ctx, f.couple.ID, b, jan10)
	require.NoError(t, err)
	assert.Equal(t, domain.RevealUnanswered, view.State)
	assert.Nil(t, view.Partner)

	view, err = f.uc.Submit(ctx, f.couple.ID, b, jan10, "Grateful for our walk.", jan10)
	require.NoError(t, err)
	assert.Equal(t, domain.RevealRevealed, view.State)

	for _, who := range []uuid.UUID{a, b} {
		view, err = f.uc.GetState(ctx, f.couple.ID, who, jan10)
		require.NoError(t, err)
		assert.Equal(t, domain.RevealRevealed, view.State)
		require.NotNil(t, view.Partner)
	}
	assert.Equal(t, "I felt heard today.", view.Partner.ResponseText)
	assert.Equal(t, "Grateful for our walk.", view.Mine.ResponseText)

	assert.Equal(t, []notification{{a, usecase.EventDailyQuestionRevealed}}, f.notifier.sent)
}

func TestSecondSubmitIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newRevealFixture(t)
	a := f.couple.PartnerAID

	_, err := f.uc.Submit(ctx, f.couple.ID, a, jan10, "original", jan10)
	require.NoError(t, err)

	_, err = f.uc.Submit(ctx, f.couple.ID, a, jan10, "edited", jan10)
	assert.ErrorIs(t, err, domain.ErrAlreadyAnswered)

	view, err := f.uc.GetState(ctx, f.couple.ID, a, jan10)
	require.NoError(t, err)
	assert.Equal(t, "original", view.Mine.ResponseText)

	// A new day is a new question.
	_, err = f.uc.Submit(ctx, f.couple.ID, a, jan10.AddDate(0, 0, 1), "tomorrow", jan10)
	assert.NoError(t, err)
}

func TestConcurrentSubmitsConverge(t *testing.T) {
	ctx := context.Background()
	f := newRevealFixture(t)
	texts := map[uuid.UUID]string{f.couple.PartnerAID: "from a", f.couple.PartnerBID: "from b"}

	var wg sync.WaitGroup
	for who, text := range texts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Submit(ctx, f.couple.ID, who, jan10, text, jan10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for who, text := range texts {
		view, err := f.uc.GetState(ctx, f.couple.ID, who, jan10)
		require.NoError(t, err)
		assert.Equal(t, domain.RevealRevealed, view.State)
		assert.Equal(t, text, view.Mine.ResponseText)
	}
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	f := newRevealFixture(t)

	_, err := f.uc.Submit(ctx, f.couple.ID, uuid.New(), jan10, "hi", jan10)
	assert.ErrorIs(t, err, domain.ErrNotPartner)

	_, err = f.uc.Submit(ctx, f.couple.ID, f.couple.PartnerAID, jan10, "   ", jan10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.uc.Submit(ctx, uuid.New(), f.couple.PartnerAID, jan10, "hi", jan10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNudgeOnlyWhileWaiting(t *testing.T) {
	ctx := context.Background()
	f := newRevealFixture(t)
	a, b := f.couple.PartnerAID, f.couple.PartnerBID

	sent, err := f.uc.Nudge(ctx, f.couple.ID, a, jan10)
	require.NoError(t, err)
	assert.False(t, sent, "unanswered requester cannot nudge")

	_, err = f.uc.Submit(ctx, f.couple.ID, a, jan10, "done", jan10)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		sent, err = f.uc.Nudge(ctx, f.couple.ID, a, jan10)
		require.NoError(t, err)
		assert.True(t, sent)
	}
	assert.Equal(t, []notification{
		{b, usecase.EventDailyQuestionNudge},
		{b, usecase.EventDailyQuestionNudge},
	}, f.notifier.sent)

	view, err := f.uc.GetState(ctx, f.couple.ID, a, jan10)
	require.NoError(t, err)
	assert.Equal(t, domain.RevealWaiting, view.State)
}

func TestNudgeNotifierFailureIsNotAnError(t *testing.T) {
	ctx := context.Background()
	f := newRevealFixture(t)
	f.notifier.err = errors.New("redis down")

	_, err := f.uc.Submit(ctx, f.couple.ID, f.couple.PartnerAID, jan10, "done", jan10)
	require.NoError(t, err)

	sent, err := f.uc.Nudge(ctx, f.couple.ID, f.couple.PartnerAID, jan10)
	require.NoError(t, err)
	assert.False(t, sent)
}
