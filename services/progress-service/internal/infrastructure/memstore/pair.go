package memstore

import (
	"context"
	"fmt"

	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

func (s *Store) InsertResponse(ctx context.Context, r *domain.PairedResponse) error {
	defer s.lock()()
	for _, other := range s.st.responses {
		if other.PairID == r.PairID && other.QuestionID == r.QuestionID && other.Day == r.Day && other.ResponderID == r.ResponderID {
			return fmt.Errorf("question %d on %s: %w", r.QuestionID, r.Day, domain.ErrAlreadyAnswered)
		}
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	s.st.responses = append(s.st.responses, *r)
	return nil
}

func (s *Store) ListResponses(ctx context.Context, pairID uuid.UUID, questionID int, day string) ([]domain.PairedResponse, error) {
	defer s.lock()()
	var out []domain.PairedResponse
	for _, r := range s.st.responses {
		if r.PairID == pairID && r.QuestionID == questionID && r.Day == day {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CreateCouple(ctx context.Context, c *domain.Couple) error {
	defer s.lock()()
	for _, other := range s.st.couples {
		if other.HasMember(c.PartnerAID) || other.HasMember(c.PartnerBID) {
			return fmt.Errorf("couple %s: %w", other.ID, domain.ErrAlreadyLinked)
		}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.st.couples = append(s.st.couples, *c)
	return nil
}

func (s *Store) GetCouple(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	defer s.lock()()
	for _, c := range s.st.couples {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("couple %s: %w", id, domain.ErrNotFound)
}

func (s *Store) GetCoupleByMember(ctx context.Context, memberID uuid.UUID) (*domain.Couple, error) {
	defer s.lock()()
	for _, c := range s.st.couples {
		if c.HasMember(memberID) {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("couple of member %s: %w", memberID, domain.ErrNotFound)
}
