package grpc_server

import (
	"context"
	"fmt"
	"net"
	"testing"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"
	"couplepath/services/progress-service/internal/infrastructure/memstore"
	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) progresspb.ProgressServiceClient {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	store := memstore.New()
	var units []domain.Unit
	for i := 1; i <= 5; i++ {
		units = append(units, domain.Unit{ProgramID: "p5", SequenceNumber: i, GroupID: "week-1", Title: fmt.Sprintf("Day %d", i), Payload: []byte(`{"n":1}`)})
	}
	require.NoError(t, store.SeedProgram(ctx, domain.Program{ID: "p5", Kind: domain.ProgramSequential},
		[]domain.ProgramGroup{{ProgramID: "p5", ID: "week-1", Kind: domain.GroupWeek}}, units))
	require.NoError(t, store.SeedProgram(ctx, domain.Program{ID: "questions", Kind: domain.ProgramRotating}, nil,
		[]domain.Unit{{ProgramID: "questions", SequenceNumber: 1, Title: "Q1"}, {ProgramID: "questions", SequenceNumber: 2, Title: "Q2"}}))

	srv := NewProgressServer(
		usecase.NewProgressionUseCase(store, store, nil, log),
		usecase.NewStreakUseCase(store),
		usecase.NewRevealUseCase(store, store, store, nil, "questions", log),
		usecase.NewCoupleUseCase(store, log),
		log,
	)

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(UnaryRecover(log), UnaryLogger(log)))
	progresspb.RegisterProgressServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return progresspb.NewProgressServiceClient(conn)
}

func TestProgressionOverGRPC(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	subject := uuid.NewString()

	enr, err := client.Enroll(ctx, &progresspb.EnrollRequest{SubjectId: subject, ProgramId: "p5", StartDate: "2024-01-10"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), enr.Enrollment.CurrentPosition)
	assert.Equal(t, "2024-01-10", enr.Enrollment.StartDate)

	_, err = client.Enroll(ctx, &progresspb.EnrollRequest{SubjectId: subject, ProgramId: "p5", StartDate: "2024-01-10"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.CompleteUnit(ctx, &progresspb.CompleteUnitRequest{SubjectId: subject, ProgramId: "p5", SequenceNumber: 4, CompletedAt: "2024-01-10T08:00:00Z"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	note := "done together"
	res, err := client.CompleteUnit(ctx, &progresspb.CompleteUnitRequest{SubjectId: subject, ProgramId: "p5", SequenceNumber: 1, CompletedAt: "2024-01-10T08:00:00-05:00", Note: &note})
	require.NoError(t, err)
	assert.Equal(t, int32(2), res.Enrollment.CurrentPosition)
	assert.Equal(t, "done together", res.Record.Note)

	states, err := client.GetUnitStates(ctx, &progresspb.GetUnitStatesRequest{SubjectId: subject, ProgramId: "p5"})
	require.NoError(t, err)
	got := []string{}
	for _, u := range states.Units {
		got = append(got, u.Status)
	}
	assert.Equal(t, []string{"completed", "current", "available", "locked", "locked"}, got)

	unit, err := client.GetCurrentUnit(ctx, &progresspb.GetCurrentUnitRequest{SubjectId: subject, ProgramId: "p5"})
	require.NoError(t, err)
	assert.Equal(t, "Day 2", unit.Unit.Title)
	assert.JSONEq(t, `{"n":1}`, string(unit.Unit.Payload))

	prog, err := client.GetProgress(ctx, &progresspb.GetProgressRequest{SubjectId: subject, ProgramId: "p5"})
	require.NoError(t, err)
	assert.Equal(t, int32(20), prog.Percent)

	phase, err := client.GetPhaseCompletion(ctx, &progresspb.GetPhaseCompletionRequest{SubjectId: subject, ProgramId: "p5", GroupId: "week-1"})
	require.NoError(t, err)
	assert.False(t, phase.Complete)

	streak, err := client.GetStreak(ctx, &progresspb.GetStreakRequest{SubjectId: subject, AsOf: "2024-01-11T20:00:00-05:00"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), streak.Current)
	assert.Equal(t, "2024-01-10", streak.LastCompletion)

	ab, err := client.Abandon(ctx, &progresspb.AbandonRequest{SubjectId: subject, ProgramId: "p5"})
	require.NoError(t, err)
	assert.Equal(t, "abandoned", ab.Enrollment.Status)
}

func TestRevealOverGRPC(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	a, b := uuid.NewString(), uuid.NewString()

	couple, err := client.LinkCouple(ctx, &progresspb.LinkCoupleRequest{MemberA: a, MemberB: b})
	require.NoError(t, err)
	pair := couple.Couple.Id

	got, err := client.GetCouple(ctx, &progresspb.GetCoupleRequest{MemberId: b})
	require.NoError(t, err)
	assert.Equal(t, pair, got.Couple.Id)

	q, err := client.GetDailyQuestion(ctx, &progresspb.GetDailyQuestionRequest{Day: "2024-01-10"})
	require.NoError(t, err)
	assert.Contains(t, []string{"Q1", "Q2"}, q.Unit.Title)

	view, err := client.SubmitResponse(ctx, &progresspb.SubmitResponseRequest{PairId: pair, ResponderId: a, Day: "2024-01-10", Text: "from a", At: "2024-01-10T08:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "waiting", view.State)
	assert.Nil(t, view.Partner)

	nudge, err := client.Nudge(ctx, &progresspb.NudgeRequest{PairId: pair, RequesterId: a, Day: "2024-01-10"})
	require.NoError(t, err)
	assert.False(t, nudge.Sent, "no notifier configured")

	_, err = client.SubmitResponse(ctx, &progresspb.SubmitResponseRequest{PairId: pair, ResponderId: a, Day: "2024-01-10", Text: "again", At: "2024-01-10T09:00:00Z"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.SubmitResponse(ctx, &progresspb.SubmitResponseRequest{PairId: pair, ResponderId: uuid.NewString(), Day: "2024-01-10", Text: "x", At: "2024-01-10T09:00:00Z"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = client.SubmitResponse(ctx, &progresspb.SubmitResponseRequest{PairId: pair, ResponderId: b, Day: "2024-01-10", Text: "from b", At: "2024-01-10T10:00:00Z"})
	require.NoError(t, err)

	view, err = client.GetRevealState(ctx, &progresspb.GetRevealStateRequest{PairId: pair, ResponderId: a, Day: "2024-01-10"})
	require.NoError(t, err)
	assert.Equal(t, "revealed", view.State)
	require.NotNil(t, view.Partner)
	assert.Equal(t, "from b", view.Partner.ResponseText)
	assert.Equal(t, "from a", view.Mine.ResponseText)
}

func TestInvalidRequests(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Enroll(ctx, &progresspb.EnrollRequest{SubjectId: "nope", ProgramId: "p5", StartDate: "2024-01-10"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Enroll(ctx, &progresspb.EnrollRequest{SubjectId: uuid.NewString(), ProgramId: "p5", StartDate: "10/01/2024"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Enroll(ctx, &progresspb.EnrollRequest{SubjectId: uuid.NewString(), ProgramId: "missing", StartDate: "2024-01-10"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetStreak(ctx, &progresspb.GetStreakRequest{SubjectId: uuid.NewString(), AsOf: "yesterday"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("x: %w", domain.ErrNotFound), codes.NotFound},
		{domain.ErrAlreadyEnrolled, codes.AlreadyExists},
		{domain.ErrAlreadyAnswered, codes.AlreadyExists},
		{domain.ErrNotUnlocked, codes.FailedPrecondition},
		{domain.ErrConcurrentModification, codes.Aborted},
		{domain.ErrInvalidArgument, codes.InvalidArgument},
		{domain.ErrNotPartner, codes.PermissionDenied},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{fmt.Errorf("db exploded"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(toStatus(tt.err)), tt.err.Error())
	}
	assert.NoError(t, toStatus(nil))

	st, _ := status.FromError(toStatus(fmt.Errorf("password=hunter2")))
	assert.Equal(t, "internal error", st.Message())
}

func TestUnaryRecover(t *testing.T) {
	interceptor := UnaryRecover(logger.Nop())
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/y"}, func(context.Context, any) (any, error) {
		panic("boom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))
}
