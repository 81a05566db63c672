package usecase

import (
	"context"
	"errors"
	"fmt"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
)

type CoupleUseCase struct {
	store CoupleStore
	log   *logger.Logger
}

func NewCoupleUseCase(store CoupleStore, log *logger.Logger) *CoupleUseCase {
	return &CoupleUseCase{store: store, log: log.With("usecase", "couple")}
}

// Link pairs two members. A member belongs to at most one couple; the lookups
// below give a readable error, the store enforces it under concurrency.
func (uc *CoupleUseCase) Link(ctx context.Context, memberA, memberB uuid.UUID) (*domain.Couple, error) {
	if memberA == uuid.Nil || memberB == uuid.Nil || memberA == memberB {
		return nil, fmt.Errorf("%w: a couple needs two distinct members", domain.ErrInvalidArgument)
	}
	for _, id := range []uuid.UUID{memberA, memberB} {
		_, err := uc.store.GetCoupleByMember(ctx, id)
		if err == nil {
			return nil, fmt.Errorf("member %s: %w", id, domain.ErrAlreadyLinked)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	c := &domain.Couple{ID: uuid.New(), PartnerAID: memberA, PartnerBID: memberB}
	if err := uc.store.CreateCouple(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Info("couple linked", "couple_id", c.ID)
	return c, nil
}

func (uc *CoupleUseCase) GetForMember(ctx context.Context, memberID uuid.UUID) (*domain.Couple, error) {
	return uc.store.GetCoupleByMember(ctx, memberID)
}
