package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository stores enrollments and the completion ledger.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

var _ usecase.ProgressStore = (*ProgressRepository)(nil)

func (r *ProgressRepository) Transaction(ctx context.Context, fn func(tx usecase.ProgressStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ProgressRepository{db: tx})
	})
}

func (r *ProgressRepository) GetActiveEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("subject_id = ? AND program_id = ? AND status = ?", subjectID, programID, domain.EnrollmentActive).
		First(&e).Error
	if err != nil {
		return nil, notFound(err, "active enrollment in %q", programID)
	}
	return &e, nil
}

func (r *ProgressRepository) GetLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	return r.latestEnrollment(r.db.WithContext(ctx), subjectID, programID)
}

// LockLatestEnrollment reads with SELECT ... FOR UPDATE.
func (r *ProgressRepository) LockLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	return r.latestEnrollment(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), subjectID, programID)
}

func (r *ProgressRepository) latestEnrollment(db *gorm.DB, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := db.
		Where("subject_id = ? AND program_id = ? AND status <> ?", subjectID, programID, domain.EnrollmentAbandoned).
		Order("created_at desc").
		First(&e).Error
	if err != nil {
		return nil, notFound(err, "enrollment in %q", programID)
	}
	return &e, nil
}

func (r *ProgressRepository) CreateEnrollment(ctx context.Context, e *domain.Enrollment) error {
	err := r.db.WithContext(ctx).Create(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("program %q: %w", e.ProgramID, domain.ErrAlreadyEnrolled)
	}
	return err
}

// UpsertEnrollmentPosition is a compare-and-set on current_position.
func (r *ProgressRepository) UpsertEnrollmentPosition(ctx context.Context, enrollmentID uuid.UUID, newPosition, expectedPrior int, status domain.EnrollmentStatus, at time.Time) error {
	updates := map[string]interface{}{
		"current_position": newPosition,
		"status":           status,
		"updated_at":       at,
	}
	if status == domain.EnrollmentCompleted {
		updates["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", at)
	}

	res := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("id = ? AND current_position = ?", enrollmentID, expectedPrior).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("enrollment %s at position %d: %w", enrollmentID, expectedPrior, domain.ErrConcurrentModification)
	}
	return nil
}

func (r *ProgressRepository) UpdateEnrollmentStatus(ctx context.Context, enrollmentID uuid.UUID, from, to domain.EnrollmentStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Where("id = ? AND status = ?", enrollmentID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("enrollment %s is no longer %s: %w", enrollmentID, from, domain.ErrConcurrentModification)
	}
	return nil
}

// UpsertCompletion inserts the record or refreshes its flags. completed_at is
// never overwritten.
func (r *ProgressRepository) UpsertCompletion(ctx context.Context, rec *domain.CompletionRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enrollment_id"}, {Name: "sequence_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"action_acknowledged", "note", "updated_at"}),
	}).Create(rec).Error
}

func (r *ProgressRepository) ListCompletions(ctx context.Context, enrollmentID uuid.UUID) ([]domain.CompletionRecord, error) {
	var recs []domain.CompletionRecord
	err := r.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("sequence_number asc").
		Find(&recs).Error
	return recs, err
}

func (r *ProgressRepository) ListSubjectCompletions(ctx context.Context, subjectID uuid.UUID) ([]domain.CompletionRecord, error) {
	var recs []domain.CompletionRecord
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("completed_at asc").
		Find(&recs).Error
	return recs, err
}
