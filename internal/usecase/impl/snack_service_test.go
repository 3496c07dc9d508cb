package impl

import (
	"context"
	"math"
	"testing"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/errors"
	mockRepo "mealplanner/internal/mocks/repository"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type snackServiceFixtures struct {
	service   usecase.SnackUsecase
	snackRepo *mockRepo.MockSnackRepository
}

func createTestSnackService(t *testing.T) snackServiceFixtures {
	snackRepo := mockRepo.NewMockSnackRepository(t)

	return snackServiceFixtures{
		service: NewSnackService(SnackServiceParams{
			SnackRepo: snackRepo,
			Logger:    newDiscardLogger(),
		}),
		snackRepo: snackRepo,
	}
}

func TestSnackService_CreateSnack(t *testing.T) {
	fx := createTestSnackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	fx.snackRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(snack *entity.SnackLog) bool {
			return snack.OwnerID == ownerID && snack.ItemName == "Martabak" && snack.Place == nil
		})).
		Return(nil)

	snack, err := fx.service.CreateSnack(ctx, ownerID, &usecase.SnackInput{
		Date:     "2026-03-02",
		ItemName: " Martabak ",
		Place:    strPtr("   "),
		Amount:   3.456,
		Note:     strPtr("manis"),
	})

	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2026-03-02"), snack.Date)
	assert.InDelta(t, 3.46, snack.Amount, 0.0001)
	require.NotNil(t, snack.Note)
	assert.Equal(t, "manis", *snack.Note)
}

func TestSnackService_CreateSnack_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SnackInput
	}{
		{name: "missing item", input: &usecase.SnackInput{Date: "2026-03-02"}},
		{name: "negative amount", input: &usecase.SnackInput{Date: "2026-03-02", ItemName: "Cilok", Amount: -1}},
		{name: "NaN amount", input: &usecase.SnackInput{Date: "2026-03-02", ItemName: "Cilok", Amount: math.NaN()}},
		{name: "bad date", input: &usecase.SnackInput{Date: "yesterday", ItemName: "Cilok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSnackService(t)

			snack, err := fx.service.CreateSnack(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.Nil(t, snack)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestSnackService_UpdateSnack_PatchesGivenFields(t *testing.T) {
	fx := createTestSnackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.SnackLog{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Date:     mustDate(t, "2026-03-02"),
		ItemName: "Cilok",
		Amount:   1.5,
	}

	fx.snackRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.snackRepo.EXPECT().Update(ctx, existing).Return(nil)

	snack, err := fx.service.UpdateSnack(ctx, ownerID, existing.ID, &usecase.UpdateSnackInput{
		Amount: floatPtr(2),
		Place:  strPtr("Kantin"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Cilok", snack.ItemName)
	assert.InDelta(t, 2.0, snack.Amount, 0.0001)
	require.NotNil(t, snack.Place)
	assert.Equal(t, "Kantin", *snack.Place)
}

func TestSnackService_GetSnack_Ownership(t *testing.T) {
	t.Run("foreign", func(t *testing.T) {
		fx := createTestSnackService(t)
		ctx := context.Background()
		snackID := uuid.New()

		fx.snackRepo.EXPECT().FindByID(ctx, snackID).Return(&entity.SnackLog{ID: snackID, OwnerID: uuid.New()}, nil)

		snack, err := fx.service.GetSnack(ctx, uuid.New(), snackID)

		require.Error(t, err)
		assert.Nil(t, snack)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestSnackService(t)
		ctx := context.Background()
		snackID := uuid.New()

		fx.snackRepo.EXPECT().FindByID(ctx, snackID).Return(nil, repository.ErrSnackLogNotFound)

		snack, err := fx.service.GetSnack(ctx, uuid.New(), snackID)

		require.Error(t, err)
		assert.Nil(t, snack)
		assert.True(t, errors.Is(err, domainerrors.ErrSnackLogNotFound))
	})
}

func TestSnackService_GetSnacks(t *testing.T) {
	t.Run("without range", func(t *testing.T) {
		fx := createTestSnackService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.snackRepo.EXPECT().FindByOwner(ctx, ownerID, repository.SnackFilter{}).Return([]*entity.SnackLog{}, nil)

		snacks, err := fx.service.GetSnacks(ctx, ownerID, nil)

		require.NoError(t, err)
		assert.Empty(t, snacks)
	})

	t.Run("with range", func(t *testing.T) {
		fx := createTestSnackService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.snackRepo.EXPECT().
			FindByOwner(ctx, ownerID, mock.MatchedBy(func(filter repository.SnackFilter) bool {
				return filter.From != nil && filter.To != nil &&
					filter.From.Equal(mustDate(t, "2026-03-01")) && filter.To.Equal(mustDate(t, "2026-03-31"))
			})).
			Return([]*entity.SnackLog{{ID: uuid.New(), OwnerID: ownerID}}, nil)

		snacks, err := fx.service.GetSnacks(ctx, ownerID, &usecase.SnackQuery{StartDate: "2026-03-01", EndDate: "2026-03-31"})

		require.NoError(t, err)
		assert.Len(t, snacks, 1)
	})

	t.Run("inverted range", func(t *testing.T) {
		fx := createTestSnackService(t)

		snacks, err := fx.service.GetSnacks(context.Background(), uuid.New(), &usecase.SnackQuery{StartDate: "2026-03-31", EndDate: "2026-03-01"})

		require.Error(t, err)
		assert.Nil(t, snacks)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestSnackService_DeleteSnack(t *testing.T) {
	fx := createTestSnackService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	snackID := uuid.New()

	fx.snackRepo.EXPECT().FindByID(ctx, snackID).Return(&entity.SnackLog{ID: snackID, OwnerID: ownerID}, nil)
	fx.snackRepo.EXPECT().Delete(ctx, snackID).Return(nil)

	require.NoError(t, fx.service.DeleteSnack(ctx, ownerID, snackID))
}
