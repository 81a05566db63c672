package usecase_test

import (
	"context"
	"testing"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoupleLink(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCoupleUseCase(newStore(t), logger.Nop())
	a, b := uuid.New(), uuid.New()

	_, err := uc.Link(ctx, a, a)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	c, err := uc.Link(ctx, a, b)
	require.NoError(t, err)

	_, err = uc.Link(ctx, uuid.New(), b)
	assert.ErrorIs(t, err, domain.ErrAlreadyLinked)

	got, err := uc.GetForMember(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = uc.GetForMember(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
