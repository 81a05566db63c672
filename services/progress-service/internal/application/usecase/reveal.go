package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

const (
	EventDailyQuestionNudge    = "daily_question_nudge"
	EventDailyQuestionRevealed = "daily_question_revealed"
)

// RevealUseCase runs the daily question: each partner answers blind and the
// answers are shown only once both exist.
type RevealUseCase struct {
	catalog   Catalog
	responses ResponseStore
	couples   CoupleStore
	notifier  Notifier
	programID string
	log       *logger.Logger
}

func NewRevealUseCase(catalog Catalog, responses ResponseStore, couples CoupleStore, notifier Notifier, questionProgramID string, log *logger.Logger) *RevealUseCase {
	return &RevealUseCase{
		catalog:   catalog,
		responses: responses,
		couples:   couples,
		notifier:  notifier,
		programID: questionProgramID,
		log:       log.With("usecase", "reveal"),
	}
}

// RevealView is what one partner sees. Partner is set only when revealed.
type RevealView struct {
	Day      string
	Question *domain.Unit
	State    domain.RevealState
	Mine     *domain.PairedResponse
	Partner  *domain.PairedResponse
}

// DailyQuestion picks the question of the given calendar day.
func (uc *RevealUseCase) DailyQuestion(ctx context.Context, day time.Time) (*domain.Unit, error) {
	units, err := uc.catalog.ListUnits(ctx, uc.programID)
	if err != nil {
		return nil, err
	}
	seq, err := domain.SelectUnitForDate(day, len(units))
	if err != nil {
		return nil, fmt.Errorf("daily question program %q: %w", uc.programID, err)
	}
	for i := range units {
		if units[i].SequenceNumber == seq {
			return &units[i], nil
		}
	}
	return nil, fmt.Errorf("question %d of program %q: %w", seq, uc.programID, domain.ErrNotFound)
}

func (uc *RevealUseCase) GetState(ctx context.Context, pairID, responderID uuid.UUID, day time.Time) (*RevealView, error) {
	partnerID, err := uc.partnerOf(ctx, pairID, responderID)
	if err != nil {
		return nil, err
	}
	question, err := uc.DailyQuestion(ctx, day)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, pairID, responderID, partnerID, question, domain.DayKey(day))
}

// Submit stores the responder's answer. The first answer wins; a second one
// fails with domain.ErrAlreadyAnswered and leaves the stored text alone.
func (uc *RevealUseCase) Submit(ctx context.Context, pairID, responderID uuid.UUID, day time.Time, text string, at time.Time) (*RevealView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrInvalidArgument)
	}
	partnerID, err := uc.partnerOf(ctx, pairID, responderID)
	if err != nil {
		return nil, err
	}
	question, err := uc.DailyQuestion(ctx, day)
	if err != nil {
		return nil, err
	}

	dayKey := domain.DayKey(day)
	r := &domain.PairedResponse{
		ID:           uuid.New(),
		PairID:       pairID,
		QuestionID:   question.SequenceNumber,
		Day:          dayKey,
		ResponderID:  responderID,
		ResponseText: text,
		CreatedAt:    at,
	}
	if err := uc.responses.InsertResponse(ctx, r); err != nil {
		return nil, err
	}

	view, err := uc.view(ctx, pairID, responderID, partnerID, question, dayKey)
	if err != nil {
		return nil, err
	}
	uc.log.Info("daily question answered", "pair_id", pairID, "responder_id", responderID, "day", dayKey, "state", view.State)

	if view.State == domain.RevealRevealed {
		uc.notify(ctx, partnerID, EventDailyQuestionRevealed)
	}
	return view, nil
}

// Nudge reminds the partner to answer. It only sends while the requester is
// waiting and never changes state.
func (uc *RevealUseCase) Nudge(ctx context.Context, pairID, requesterID uuid.UUID, day time.Time) (bool, error) {
	view, err := uc.GetState(ctx, pairID, requesterID, day)
	if err != nil {
		return false, err
	}
	if view.State != domain.RevealWaiting {
		return false, nil
	}
	partnerID, err := uc.partnerOf(ctx, pairID, requesterID)
	if err != nil {
		return false, err
	}
	return uc.notify(ctx, partnerID, EventDailyQuestionNudge), nil
}

func (uc *RevealUseCase) view(ctx context.Context, pairID, responderID, partnerID uuid.UUID, question *domain.Unit, dayKey string) (*RevealView, error) {
	responses, err := uc.responses.ListResponses(ctx, pairID, question.SequenceNumber, dayKey)
	if err != nil {
		return nil, err
	}
	state, mine, theirs := domain.ResolveReveal(responderID, partnerID, responses)
	v := &RevealView{Day: dayKey, Question: question, State: state, Mine: mine}
	if state == domain.RevealRevealed {
		v.Partner = theirs
	}
	return v, nil
}

func (uc *RevealUseCase) partnerOf(ctx context.Context, pairID, memberID uuid.UUID) (uuid.UUID, error) {
	couple, err := uc.couples.GetCouple(ctx, pairID)
	if err != nil {
		return uuid.Nil, err
	}
	partnerID, ok := couple.PartnerOf(memberID)
	if !ok {
		return uuid.Nil, fmt.Errorf("member %s of pair %s: %w", memberID, pairID, domain.ErrNotPartner)
	}
	return partnerID, nil
}

func (uc *RevealUseCase) notify(ctx context.Context, recipientID uuid.UUID, event string) bool {
	if uc.notifier == nil {
		return false
	}
	if err := uc.notifier.Notify(ctx, recipientID, event); err != nil {
		uc.log.Warn("notification failed", "recipient_id", recipientID, "event", event, "error", err)
		return false
	}
	return true
}
