package usecase

import (
	"context"
	"time"

	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

// Catalog is the read-only content catalog.
type Catalog interface {
	GetProgram(ctx context.Context, programID string) (*domain.Program, error)
	// ListUnits returns units ordered by sequence number.
	ListUnits(ctx context.Context, programID string) ([]domain.Unit, error)
	GetUnit(ctx context.Context, programID string, sequenceNumber int) (*domain.Unit, error)
	ListGroups(ctx context.Context, programID string) ([]domain.ProgramGroup, error)
}

// ProgressStore persists enrollments and the completion ledger.
type ProgressStore interface {
	// Transaction runs fn against a store bound to one transaction.
	Transaction(ctx context.Context, fn func(tx ProgressStore) error) error

	GetActiveEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error)
	// GetLatestEnrollment returns the newest enrollment that was not abandoned.
	GetLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error)
	// LockLatestEnrollment is GetLatestEnrollment holding the row until the
	// surrounding transaction ends. Only meaningful inside Transaction.
	LockLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error)
	CreateEnrollment(ctx context.Context, e *domain.Enrollment) error
	// UpsertEnrollmentPosition writes the new position only if the stored one
	// still equals expectedPrior, else it returns domain.ErrConcurrentModification.
	UpsertEnrollmentPosition(ctx context.Context, enrollmentID uuid.UUID, newPosition, expectedPrior int, status domain.EnrollmentStatus, at time.Time) error
	UpdateEnrollmentStatus(ctx context.Context, enrollmentID uuid.UUID, from, to domain.EnrollmentStatus) error

	UpsertCompletion(ctx context.Context, rec *domain.CompletionRecord) error
	ListCompletions(ctx context.Context, enrollmentID uuid.UUID) ([]domain.CompletionRecord, error)
	ListSubjectCompletions(ctx context.Context, subjectID uuid.UUID) ([]domain.CompletionRecord, error)
}

type ResponseStore interface {
	// InsertResponse returns domain.ErrAlreadyAnswered when the responder already answered.
	InsertResponse(ctx context.Context, r *domain.PairedResponse) error
	ListResponses(ctx context.Context, pairID uuid.UUID, questionID int, day string) ([]domain.PairedResponse, error)
}

type CoupleStore interface {
	CreateCouple(ctx context.Context, c *domain.Couple) error
	GetCouple(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetCoupleByMember(ctx context.Context, memberID uuid.UUID) (*domain.Couple, error)
}

// Notifier delivers out-of-band events. Fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, eventType string) error
}

// MilestoneChecker is the opaque milestone detector run after completions.
type MilestoneChecker interface {
	CheckMilestones(ctx context.Context, subjectID uuid.UUID) ([]string, error)
}

type noMilestones struct{}

func (noMilestones) CheckMilestones(context.Context, uuid.UUID) ([]string, error) { return nil, nil }

// NoMilestones is used when no milestone collaborator is configured.
var NoMilestones MilestoneChecker = noMilestones{}
