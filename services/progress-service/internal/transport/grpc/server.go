package grpc_server

import (
	"context"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"
	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ProgressServer struct {
	progresspb.UnimplementedProgressServiceServer

	progression *usecase.ProgressionUseCase
	streaks     *usecase.StreakUseCase
	reveal      *usecase.RevealUseCase
	couples     *usecase.CoupleUseCase
	log         *logger.Logger
}

func NewProgressServer(progression *usecase.ProgressionUseCase, streaks *usecase.StreakUseCase, reveal *usecase.RevealUseCase, couples *usecase.CoupleUseCase, log *logger.Logger) *ProgressServer {
	return &ProgressServer{
		progression: progression,
		streaks:     streaks,
		reveal:      reveal,
		couples:     couples,
		log:         log,
	}
}

var _ progresspb.ProgressServiceServer = (*ProgressServer)(nil)

func (s *ProgressServer) Enroll(ctx context.Context, req *progresspb.EnrollRequest) (*progresspb.EnrollmentResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	startDate, err := domain.ParseDay(req.StartDate, time.UTC)
	if err != nil {
		return nil, s.fail(err)
	}

	e, err := s.progression.Enroll(ctx, subjectID, req.ProgramId, startDate)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.EnrollmentResponse{Enrollment: toPBEnrollment(e)}, nil
}

func (s *ProgressServer) Abandon(ctx context.Context, req *progresspb.AbandonRequest) (*progresspb.EnrollmentResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	e, err := s.progression.Abandon(ctx, subjectID, req.ProgramId)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.EnrollmentResponse{Enrollment: toPBEnrollment(e)}, nil
}

func (s *ProgressServer) GetUnitStates(ctx context.Context, req *progresspb.GetUnitStatesRequest) (*progresspb.GetUnitStatesResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	states, err := s.progression.GetUnitStates(ctx, subjectID, req.ProgramId)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.GetUnitStatesResponse{Units: toPBUnitStates(states)}, nil
}

func (s *ProgressServer) CompleteUnit(ctx context.Context, req *progresspb.CompleteUnitRequest) (*progresspb.CompleteUnitResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	at, err := parseInstant("completed_at", req.CompletedAt)
	if err != nil {
		return nil, err
	}

	c, err := s.progression.CompleteUnit(ctx, usecase.CompleteUnitInput{
		SubjectID:      subjectID,
		ProgramID:      req.ProgramId,
		SequenceNumber: int(req.SequenceNumber),
		At:             at,
		Flags: domain.CompletionFlags{
			ActionAcknowledged: req.ActionAcknowledged,
			Note:               req.Note,
		},
	})
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.CompleteUnitResponse{
		Enrollment: toPBEnrollment(c.Enrollment),
		Record:     toPBRecord(c.Record),
		Milestones: c.Milestones,
	}, nil
}

func (s *ProgressServer) GetPhaseCompletion(ctx context.Context, req *progresspb.GetPhaseCompletionRequest) (*progresspb.GetPhaseCompletionResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	done, err := s.progression.GetPhaseCompletion(ctx, req.ProgramId, req.GroupId, subjectID)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.GetPhaseCompletionResponse{Complete: done}, nil
}

func (s *ProgressServer) GetProgress(ctx context.Context, req *progresspb.GetProgressRequest) (*progresspb.GetProgressResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	p, err := s.progression.GetProgress(ctx, subjectID, req.ProgramId)
	if err != nil {
		return nil, s.fail(err)
	}
	return toPBProgress(p), nil
}

func (s *ProgressServer) GetCurrentUnit(ctx context.Context, req *progresspb.GetCurrentUnitRequest) (*progresspb.UnitResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	u, err := s.progression.CurrentUnit(ctx, subjectID, req.ProgramId)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.UnitResponse{Unit: toPBUnit(u)}, nil
}

func (s *ProgressServer) GetStreak(ctx context.Context, req *progresspb.GetStreakRequest) (*progresspb.GetStreakResponse, error) {
	subjectID, err := parseID("subject_id", req.SubjectId)
	if err != nil {
		return nil, err
	}
	asOf, err := parseInstant("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}
	st, err := s.streaks.ComputeStreak(ctx, subjectID, asOf)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.GetStreakResponse{
		Current:        int32(st.Current),
		Longest:        int32(st.Longest),
		Alive:          st.Alive,
		LastCompletion: st.LastCompletion,
	}, nil
}

func (s *ProgressServer) GetDailyQuestion(ctx context.Context, req *progresspb.GetDailyQuestionRequest) (*progresspb.UnitResponse, error) {
	day, err := domain.ParseDay(req.Day, time.UTC)
	if err != nil {
		return nil, s.fail(err)
	}
	u, err := s.reveal.DailyQuestion(ctx, day)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.UnitResponse{Unit: toPBUnit(u)}, nil
}

func (s *ProgressServer) GetRevealState(ctx context.Context, req *progresspb.GetRevealStateRequest) (*progresspb.RevealResponse, error) {
	pairID, responderID, day, err := parsePairRequest(req.PairId, req.ResponderId, req.Day)
	if err != nil {
		return nil, err
	}
	v, err := s.reveal.GetState(ctx, pairID, responderID, day)
	if err != nil {
		return nil, s.fail(err)
	}
	return toPBReveal(v), nil
}

func (s *ProgressServer) SubmitResponse(ctx context.Context, req *progresspb.SubmitResponseRequest) (*progresspb.RevealResponse, error) {
	pairID, responderID, day, err := parsePairRequest(req.PairId, req.ResponderId, req.Day)
	if err != nil {
		return nil, err
	}
	at, err := parseInstant("at", req.At)
	if err != nil {
		return nil, err
	}
	v, err := s.reveal.Submit(ctx, pairID, responderID, day, req.Text, at)
	if err != nil {
		return nil, s.fail(err)
	}
	return toPBReveal(v), nil
}

func (s *ProgressServer) Nudge(ctx context.Context, req *progresspb.NudgeRequest) (*progresspb.NudgeResponse, error) {
	pairID, requesterID, day, err := parsePairRequest(req.PairId, req.RequesterId, req.Day)
	if err != nil {
		return nil, err
	}
	sent, err := s.reveal.Nudge(ctx, pairID, requesterID, day)
	if err != nil {
		return nil, s.fail(err)
	}
	return &progresspb.NudgeResponse{Sent: sent}, nil
}

func (s *ProgressServer) LinkCouple(ctx context.Context, req *progresspb.LinkCoupleRequest) (*progresspb.CoupleResponse, error) {
	a, err := parseID("member_a", req.MemberA)
	if err != nil {
		return nil, err
	}
	b, err := parseID("member_b", req.MemberB)
	if err != nil {
		return nil, err
	}
	c, err := s.couples.Link(ctx, a, b)
	if err != nil {
		return nil, s.fail(err)
	}
	return toPBCouple(c), nil
}

func (s *ProgressServer) GetCouple(ctx context.Context, req *progresspb.GetCoupleRequest) (*progresspb.CoupleResponse, error) {
	memberID, err := parseID("member_id", req.MemberId)
	if err != nil {
		return nil, err
	}
	c, err := s.couples.GetForMember(ctx, memberID)
	if err != nil {
		return nil, s.fail(err)
	}
	return toPBCouple(c), nil
}

func (s *ProgressServer) fail(err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.log.Error("request failed", "error", err)
	}
	return st
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return id, nil
}

func parseInstant(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return t, nil
}

func parsePairRequest(pair, member, day string) (uuid.UUID, uuid.UUID, time.Time, error) {
	pairID, err := parseID("pair_id", pair)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, err
	}
	memberID, err := parseID("member_id", member)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, err
	}
	d, err := domain.ParseDay(day, time.UTC)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, toStatus(err)
	}
	return pairID, memberID, d, nil
}
