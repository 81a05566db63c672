// Package memstore keeps the catalog, the progress ledger, responses and couples
// in process memory. It backs tests and STORAGE=memory local runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

type state struct {
	programs    map[string]domain.Program
	groups      map[string][]domain.ProgramGroup
	units       map[string][]domain.Unit
	enrollments []domain.Enrollment
	completions map[uuid.UUID]map[int]domain.CompletionRecord
	responses   []domain.PairedResponse
	couples     []domain.Couple
}

func newState() *state {
	return &state{
		programs:    map[string]domain.Program{},
		groups:      map[string][]domain.ProgramGroup{},
		units:       map[string][]domain.Unit{},
		completions: map[uuid.UUID]map[int]domain.CompletionRecord{},
	}
}

// clone copies the mutable parts. Catalog slices are replaced wholesale on
// seeding, never edited in place, so sharing them is safe.
func (s *state) clone() *state {
	c := &state{
		programs:    make(map[string]domain.Program, len(s.programs)),
		groups:      make(map[string][]domain.ProgramGroup, len(s.groups)),
		units:       make(map[string][]domain.Unit, len(s.units)),
		enrollments: append([]domain.Enrollment(nil), s.enrollments...),
		completions: make(map[uuid.UUID]map[int]domain.CompletionRecord, len(s.completions)),
		responses:   append([]domain.PairedResponse(nil), s.responses...),
		couples:     append([]domain.Couple(nil), s.couples...),
	}
	for k, v := range s.programs {
		c.programs[k] = v
	}
	for k, v := range s.groups {
		c.groups[k] = v
	}
	for k, v := range s.units {
		c.units[k] = v
	}
	for id, recs := range s.completions {
		m := make(map[int]domain.CompletionRecord, len(recs))
		for seq, r := range recs {
			m[seq] = r
		}
		c.completions[id] = m
	}
	return c
}

// Store implements every storage port of the progress service.
type Store struct {
	mu   *sync.Mutex
	st   *state
	inTx bool
	now  func() time.Time
}

func New() *Store {
	return &Store{mu: &sync.Mutex{}, st: newState(), now: time.Now}
}

var (
	_ usecase.Catalog       = (*Store)(nil)
	_ usecase.ProgressStore = (*Store)(nil)
	_ usecase.ResponseStore = (*Store)(nil)
	_ usecase.CoupleStore   = (*Store)(nil)
)

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Transaction holds the store lock for the whole of fn and restores the
// previous state when fn fails.
func (s *Store) Transaction(ctx context.Context, fn func(tx usecase.ProgressStore) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	tx := &Store{mu: s.mu, st: s.st, inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		*s.st = *snapshot
		return err
	}
	return nil
}

// SeedProgram replaces a program with its groups and units.
func (s *Store) SeedProgram(ctx context.Context, p domain.Program, groups []domain.ProgramGroup, units []domain.Unit) error {
	units = append([]domain.Unit(nil), units...)
	sort.Slice(units, func(i, j int) bool { return units[i].SequenceNumber < units[j].SequenceNumber })
	if err := domain.ValidateUnits(units); err != nil {
		return fmt.Errorf("program %q: %w", p.ID, err)
	}
	groups = append([]domain.ProgramGroup(nil), groups...)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Position < groups[j].Position })

	defer s.lock()()
	s.st.programs[p.ID] = p
	s.st.groups[p.ID] = groups
	s.st.units[p.ID] = units
	return nil
}

func (s *Store) GetProgram(ctx context.Context, programID string) (*domain.Program, error) {
	defer s.lock()()
	p, ok := s.st.programs[programID]
	if !ok {
		return nil, fmt.Errorf("program %q: %w", programID, domain.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) ListUnits(ctx context.Context, programID string) ([]domain.Unit, error) {
	defer s.lock()()
	if _, ok := s.st.programs[programID]; !ok {
		return nil, fmt.Errorf("program %q: %w", programID, domain.ErrNotFound)
	}
	return append([]domain.Unit(nil), s.st.units[programID]...), nil
}

func (s *Store) GetUnit(ctx context.Context, programID string, sequenceNumber int) (*domain.Unit, error) {
	defer s.lock()()
	for _, u := range s.st.units[programID] {
		if u.SequenceNumber == sequenceNumber {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("unit %d of program %q: %w", sequenceNumber, programID, domain.ErrNotFound)
}

func (s *Store) ListGroups(ctx context.Context, programID string) ([]domain.ProgramGroup, error) {
	defer s.lock()()
	if _, ok := s.st.programs[programID]; !ok {
		return nil, fmt.Errorf("program %q: %w", programID, domain.ErrNotFound)
	}
	return append([]domain.ProgramGroup(nil), s.st.groups[programID]...), nil
}
