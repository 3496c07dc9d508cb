package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "mealplanner/internal/delivery/context"
	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/metrics"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// snackService implements the SnackUsecase interface. Snack logs are flat, so every
// operation is a single statement and no transaction is opened.
type snackService struct {
	snackRepo repository.SnackRepository
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// SnackServiceParams holds dependencies for SnackService, injected by Fx.
type SnackServiceParams struct {
	fx.In

	SnackRepo repository.SnackRepository
	Recorder  metrics.Recorder `optional:"true"`
	Logger    *slog.Logger
}

// NewSnackService is the constructor for snackService.
func NewSnackService(params SnackServiceParams) usecase.SnackUsecase {
	return &snackService{
		snackRepo: params.SnackRepo,
		recorder:  recorderOrNop(params.Recorder),
		logger:    params.Logger,
	}
}

func (srv *snackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *snackService) CreateSnack(ctx context.Context, ownerID uuid.UUID, input *usecase.SnackInput) (*entity.SnackLog, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	verr := &domainerrors.ValidationError{}
	snack := &entity.SnackLog{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Date:     parseDateField(verr, "date", input.Date),
		ItemName: requireText(verr, "itemName", input.ItemName),
		Place:    trimOptional(input.Place),
		Amount:   validateAmount(verr, input.Amount),
		Note:     trimOptional(input.Note),
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err := srv.snackRepo.Create(ctx, snack)
	srv.recorder.RecordAggregateWrite(aggregateSnack, "create", err)
	if err != nil {
		srv.log(ctx).Error("Failed to create snack log", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create snack log")
	}

	return snack, nil
}

func (srv *snackService) UpdateSnack(ctx context.Context, ownerID, snackID uuid.UUID, input *usecase.UpdateSnackInput) (*entity.SnackLog, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	snack, err := srv.loadOwnedSnack(ctx, ownerID, snackID)
	if err != nil {
		return nil, err
	}

	verr := &domainerrors.ValidationError{}
	if input.Date != nil {
		snack.Date = parseDateField(verr, "date", *input.Date)
	}
	if input.ItemName != nil {
		snack.ItemName = requireText(verr, "itemName", *input.ItemName)
	}
	if input.Place != nil {
		snack.Place = trimOptional(input.Place)
	}
	if input.Amount != nil {
		snack.Amount = validateAmount(verr, *input.Amount)
	}
	if input.Note != nil {
		snack.Note = trimOptional(input.Note)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err = srv.snackRepo.Update(ctx, snack)
	srv.recorder.RecordAggregateWrite(aggregateSnack, "update", err)
	if err != nil {
		return nil, translateRepoError(err, "failed to update snack log")
	}

	return snack, nil
}

// GetSnacks lists the owner's snack logs, optionally limited to an inclusive date range.
func (srv *snackService) GetSnacks(ctx context.Context, ownerID uuid.UUID, query *usecase.SnackQuery) ([]*entity.SnackLog, error) {
	var filter repository.SnackFilter
	if query != nil {
		verr := &domainerrors.ValidationError{}
		if query.StartDate != "" {
			start := parseDateField(verr, "startDate", query.StartDate)
			filter.From = &start
		}
		if query.EndDate != "" {
			end := parseDateField(verr, "endDate", query.EndDate)
			filter.To = &end
		}
		if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
			verr.Add("endDate", "must not be before startDate")
		}
		if err := verr.OrNil(); err != nil {
			return nil, err
		}
	}

	snacks, err := srv.snackRepo.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list snack logs", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list snack logs")
	}

	return snacks, nil
}

func (srv *snackService) GetSnack(ctx context.Context, ownerID, snackID uuid.UUID) (*entity.SnackLog, error) {
	return srv.loadOwnedSnack(ctx, ownerID, snackID)
}

func (srv *snackService) DeleteSnack(ctx context.Context, ownerID, snackID uuid.UUID) error {
	if _, err := srv.loadOwnedSnack(ctx, ownerID, snackID); err != nil {
		return err
	}

	err := srv.snackRepo.Delete(ctx, snackID)
	srv.recorder.RecordAggregateWrite(aggregateSnack, "delete", err)

	return translateRepoError(err, "failed to delete snack log")
}

func (srv *snackService) loadOwnedSnack(ctx context.Context, ownerID, snackID uuid.UUID) (*entity.SnackLog, error) {
	snack, err := srv.snackRepo.FindByID(ctx, snackID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find snack log")
	}
	if err := service.AssertOwned(snack, ownerID); err != nil {
		return nil, err
	}

	return snack, nil
}

func validateAmount(verr *domainerrors.ValidationError, amount float64) float64 {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		verr.Add("amount", "must not be negative")

		return 0
	}

	return entity.RoundAmount(amount)
}
