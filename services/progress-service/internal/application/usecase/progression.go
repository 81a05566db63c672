package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

// ProgressionUseCase walks subjects through sequential programs one unit at a time.
type ProgressionUseCase struct {
	catalog    Catalog
	store      ProgressStore
	milestones MilestoneChecker
	log        *logger.Logger
}

func NewProgressionUseCase(catalog Catalog, store ProgressStore, milestones MilestoneChecker, log *logger.Logger) *ProgressionUseCase {
	if milestones == nil {
		milestones = NoMilestones
	}
	return &ProgressionUseCase{
		catalog:    catalog,
		store:      store,
		milestones: milestones,
		log:        log.With("usecase", "progression"),
	}
}

type CompleteUnitInput struct {
	SubjectID      uuid.UUID
	ProgramID      string
	SequenceNumber int
	At             time.Time
	Flags          domain.CompletionFlags
}

type Completion struct {
	Enrollment *domain.Enrollment
	Record     *domain.CompletionRecord
	// Milestones newly unlocked by this completion, for celebration only.
	Milestones []string
}

type GroupProgress struct {
	GroupID        string
	ParentID       string
	Kind           domain.GroupKind
	Title          string
	CompletedUnits int
	TotalUnits     int
	Complete       bool
}

type ProgramProgress struct {
	Enrollment     *domain.Enrollment
	CompletedUnits int
	TotalUnits     int
	Percent        int
	Groups         []GroupProgress
}

func (uc *ProgressionUseCase) Enroll(ctx context.Context, subjectID uuid.UUID, programID string, startDate time.Time) (*domain.Enrollment, error) {
	if subjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty subject id", domain.ErrInvalidArgument)
	}
	if _, err := uc.sequentialUnits(ctx, programID); err != nil {
		return nil, err
	}

	_, err := uc.store.GetActiveEnrollment(ctx, subjectID, programID)
	if err == nil {
		return nil, fmt.Errorf("program %q: %w", programID, domain.ErrAlreadyEnrolled)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	e := &domain.Enrollment{
		ID:              uuid.New(),
		SubjectID:       subjectID,
		ProgramID:       programID,
		StartDate:       domain.StartOfDay(startDate),
		CurrentPosition: 1,
		Status:          domain.EnrollmentActive,
	}
	if err := uc.store.CreateEnrollment(ctx, e); err != nil {
		return nil, err
	}

	uc.log.Info("subject enrolled", "subject_id", subjectID, "program_id", programID, "enrollment_id", e.ID)
	return e, nil
}

// Abandon ends the active enrollment so the subject may enroll again.
func (uc *ProgressionUseCase) Abandon(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	e, err := uc.store.GetActiveEnrollment(ctx, subjectID, programID)
	if err != nil {
		return nil, err
	}
	if err := uc.store.UpdateEnrollmentStatus(ctx, e.ID, domain.EnrollmentActive, domain.EnrollmentAbandoned); err != nil {
		return nil, err
	}
	e.Status = domain.EnrollmentAbandoned

	uc.log.Info("enrollment abandoned", "subject_id", subjectID, "program_id", programID, "position", e.CurrentPosition)
	return e, nil
}

func (uc *ProgressionUseCase) GetUnitStates(ctx context.Context, subjectID uuid.UUID, programID string) ([]domain.UnitState, error) {
	units, err := uc.sequentialUnits(ctx, programID)
	if err != nil {
		return nil, err
	}
	e, err := uc.store.GetLatestEnrollment(ctx, subjectID, programID)
	if err != nil {
		return nil, err
	}
	records, err := uc.store.ListCompletions(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	return domain.ComputeUnitStates(units, e.CurrentPosition, domain.CompletedSet(records)), nil
}

// CompleteUnit records the unit as done and advances the enrollment when the
// unit is the current one. Completing an already completed unit only refreshes
// its record.
func (uc *ProgressionUseCase) CompleteUnit(ctx context.Context, in CompleteUnitInput) (*Completion, error) {
	units, err := uc.sequentialUnits(ctx, in.ProgramID)
	if err != nil {
		return nil, err
	}
	total := len(units)
	if in.SequenceNumber < 1 || in.SequenceNumber > total {
		return nil, fmt.Errorf("unit %d of program %q: %w", in.SequenceNumber, in.ProgramID, domain.ErrNotFound)
	}
	if in.At.IsZero() {
		return nil, fmt.Errorf("%w: completion time is required", domain.ErrInvalidArgument)
	}

	var result Completion
	err = uc.store.Transaction(ctx, func(tx ProgressStore) error {
		// Completions are read under the enrollment lock so a concurrent
		// completion of the last unit cannot be missed.
		e, err := tx.LockLatestEnrollment(ctx, in.SubjectID, in.ProgramID)
		if err != nil {
			return err
		}
		records, err := tx.ListCompletions(ctx, e.ID)
		if err != nil {
			return err
		}
		completed := domain.CompletedSet(records)

		if domain.StatusOf(in.SequenceNumber, e.CurrentPosition, completed[in.SequenceNumber]) == domain.UnitLocked {
			return fmt.Errorf("unit %d at position %d: %w", in.SequenceNumber, e.CurrentPosition, domain.ErrNotUnlocked)
		}

		rec := &domain.CompletionRecord{
			EnrollmentID:   e.ID,
			SequenceNumber: in.SequenceNumber,
			SubjectID:      in.SubjectID,
			ProgramID:      in.ProgramID,
			CompletedAt:    in.At,
		}
		for i := range records {
			if records[i].SequenceNumber == in.SequenceNumber {
				*rec = records[i]
				break
			}
		}
		in.Flags.Apply(rec)
		rec.UpdatedAt = in.At
		if err := tx.UpsertCompletion(ctx, rec); err != nil {
			return err
		}
		completed[in.SequenceNumber] = true

		newPosition := e.CurrentPosition
		if in.SequenceNumber == e.CurrentPosition {
			newPosition = domain.NextPosition(e.CurrentPosition, total)
		}
		status := e.Status
		if newPosition == total && completed[total] {
			status = domain.EnrollmentCompleted
		}

		if newPosition != e.CurrentPosition || status != e.Status {
			if err := tx.UpsertEnrollmentPosition(ctx, e.ID, newPosition, e.CurrentPosition, status, in.At); err != nil {
				return err
			}
			if status == domain.EnrollmentCompleted && e.Status != domain.EnrollmentCompleted {
				at := in.At
				e.CompletedAt = &at
			}
			e.CurrentPosition = newPosition
			e.Status = status
		}

		result.Enrollment = e
		result.Record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("unit completed",
		"subject_id", in.SubjectID,
		"program_id", in.ProgramID,
		"sequence", in.SequenceNumber,
		"position", result.Enrollment.CurrentPosition,
		"status", result.Enrollment.Status,
	)

	milestones, err := uc.milestones.CheckMilestones(ctx, in.SubjectID)
	if err != nil {
		uc.log.Warn("milestone check failed", "subject_id", in.SubjectID, "error", err)
	} else {
		result.Milestones = milestones
	}
	return &result, nil
}

// GetPhaseCompletion reports whether every unit in the group (and the groups
// nested under it) is completed. It has no bearing on locking.
func (uc *ProgressionUseCase) GetPhaseCompletion(ctx context.Context, programID, groupID string, subjectID uuid.UUID) (bool, error) {
	groups, err := uc.catalog.ListGroups(ctx, programID)
	if err != nil {
		return false, err
	}
	if !hasGroup(groups, groupID) {
		return false, fmt.Errorf("group %q of program %q: %w", groupID, programID, domain.ErrNotFound)
	}
	units, err := uc.sequentialUnits(ctx, programID)
	if err != nil {
		return false, err
	}

	e, err := uc.store.GetLatestEnrollment(ctx, subjectID, programID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	records, err := uc.store.ListCompletions(ctx, e.ID)
	if err != nil {
		return false, err
	}

	members := domain.GroupAndDescendants(groups, groupID)
	completed := domain.CompletedSet(records)
	for _, u := range units {
		if members[u.GroupID] && !completed[u.SequenceNumber] {
			return false, nil
		}
	}
	return true, nil
}

func (uc *ProgressionUseCase) GetProgress(ctx context.Context, subjectID uuid.UUID, programID string) (*ProgramProgress, error) {
	units, err := uc.sequentialUnits(ctx, programID)
	if err != nil {
		return nil, err
	}
	groups, err := uc.catalog.ListGroups(ctx, programID)
	if err != nil {
		return nil, err
	}
	e, err := uc.store.GetLatestEnrollment(ctx, subjectID, programID)
	if err != nil {
		return nil, err
	}
	records, err := uc.store.ListCompletions(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	completed := domain.CompletedSet(records)

	p := &ProgramProgress{
		Enrollment:     e,
		CompletedUnits: len(completed),
		TotalUnits:     len(units),
		Percent:        len(completed) * 100 / len(units),
	}
	for _, g := range groups {
		members := domain.GroupAndDescendants(groups, g.ID)
		gp := GroupProgress{GroupID: g.ID, ParentID: g.ParentID, Kind: g.Kind, Title: g.Title}
		for _, u := range units {
			if !members[u.GroupID] {
				continue
			}
			gp.TotalUnits++
			if completed[u.SequenceNumber] {
				gp.CompletedUnits++
			}
		}
		gp.Complete = gp.CompletedUnits == gp.TotalUnits
		p.Groups = append(p.Groups, gp)
	}
	return p, nil
}

// CurrentUnit is the unit offered today: the one at the enrollment position.
func (uc *ProgressionUseCase) CurrentUnit(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Unit, error) {
	e, err := uc.store.GetLatestEnrollment(ctx, subjectID, programID)
	if err != nil {
		return nil, err
	}
	return uc.catalog.GetUnit(ctx, programID, e.CurrentPosition)
}

func (uc *ProgressionUseCase) sequentialUnits(ctx context.Context, programID string) ([]domain.Unit, error) {
	program, err := uc.catalog.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	if program.Kind == domain.ProgramRotating {
		return nil, fmt.Errorf("%w: program %q is not sequential", domain.ErrInvalidArgument, programID)
	}
	units, err := uc.catalog.ListUnits(ctx, programID)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("units of program %q: %w", programID, domain.ErrNotFound)
	}
	return units, nil
}

func hasGroup(groups []domain.ProgramGroup, id string) bool {
	for _, g := range groups {
		if g.ID == id {
			return true
		}
	}
	return false
}
