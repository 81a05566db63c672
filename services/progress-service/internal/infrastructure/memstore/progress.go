package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

func (s *Store) GetActiveEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	defer s.lock()()
	for _, e := range s.st.enrollments {
		if e.SubjectID == subjectID && e.ProgramID == programID && e.IsActive() {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("active enrollment in %q: %w", programID, domain.ErrNotFound)
}

func (s *Store) GetLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	defer s.lock()()
	for i := len(s.st.enrollments) - 1; i >= 0; i-- {
		e := s.st.enrollments[i]
		if e.SubjectID == subjectID && e.ProgramID == programID && e.Status != domain.EnrollmentAbandoned {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("enrollment in %q: %w", programID, domain.ErrNotFound)
}

// LockLatestEnrollment needs no extra locking: transactions already hold the
// store mutex.
func (s *Store) LockLatestEnrollment(ctx context.Context, subjectID uuid.UUID, programID string) (*domain.Enrollment, error) {
	return s.GetLatestEnrollment(ctx, subjectID, programID)
}

func (s *Store) CreateEnrollment(ctx context.Context, e *domain.Enrollment) error {
	defer s.lock()()
	for _, other := range s.st.enrollments {
		if other.SubjectID == e.SubjectID && other.ProgramID == e.ProgramID && other.IsActive() && e.IsActive() {
			return fmt.Errorf("program %q: %w", e.ProgramID, domain.ErrAlreadyEnrolled)
		}
	}
	now := s.now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	s.st.enrollments = append(s.st.enrollments, *e)
	return nil
}

func (s *Store) UpsertEnrollmentPosition(ctx context.Context, enrollmentID uuid.UUID, newPosition, expectedPrior int, status domain.EnrollmentStatus, at time.Time) error {
	defer s.lock()()
	e := s.st.enrollment(enrollmentID)
	if e == nil || e.CurrentPosition != expectedPrior {
		return fmt.Errorf("enrollment %s at position %d: %w", enrollmentID, expectedPrior, domain.ErrConcurrentModification)
	}
	e.CurrentPosition = newPosition
	if status == domain.EnrollmentCompleted && e.Status != domain.EnrollmentCompleted {
		completedAt := at
		e.CompletedAt = &completedAt
	}
	e.Status = status
	e.UpdatedAt = at
	return nil
}

func (s *Store) UpdateEnrollmentStatus(ctx context.Context, enrollmentID uuid.UUID, from, to domain.EnrollmentStatus) error {
	defer s.lock()()
	e := s.st.enrollment(enrollmentID)
	if e == nil {
		return fmt.Errorf("enrollment %s: %w", enrollmentID, domain.ErrNotFound)
	}
	if e.Status != from {
		return fmt.Errorf("enrollment %s is %s: %w", enrollmentID, e.Status, domain.ErrConcurrentModification)
	}
	e.Status = to
	e.UpdatedAt = s.now()
	return nil
}

func (s *Store) UpsertCompletion(ctx context.Context, rec *domain.CompletionRecord) error {
	defer s.lock()()
	recs := s.st.completions[rec.EnrollmentID]
	if recs == nil {
		recs = map[int]domain.CompletionRecord{}
		s.st.completions[rec.EnrollmentID] = recs
	}
	if prev, ok := recs[rec.SequenceNumber]; ok {
		rec.CompletedAt = prev.CompletedAt
	}
	recs[rec.SequenceNumber] = *rec
	return nil
}

func (s *Store) ListCompletions(ctx context.Context, enrollmentID uuid.UUID) ([]domain.CompletionRecord, error) {
	defer s.lock()()
	out := make([]domain.CompletionRecord, 0, len(s.st.completions[enrollmentID]))
	for _, r := range s.st.completions[enrollmentID] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceNumber < out[j].SequenceNumber })
	return out, nil
}

func (s *Store) ListSubjectCompletions(ctx context.Context, subjectID uuid.UUID) ([]domain.CompletionRecord, error) {
	defer s.lock()()
	var out []domain.CompletionRecord
	for _, recs := range s.st.completions {
		for _, r := range recs {
			if r.SubjectID == subjectID {
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.Before(out[j].CompletedAt) })
	return out, nil
}

func (s *state) enrollment(id uuid.UUID) *domain.Enrollment {
	for i := range s.enrollments {
		if s.enrollments[i].ID == id {
			return &s.enrollments[i]
		}
	}
	return nil
}
