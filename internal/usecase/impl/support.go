package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mealplanner/internal/delivery/context"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/metrics"

	"github.com/google/uuid"
)

// Aggregate names used for metrics labels.
const (
	aggregateMealPlan = "mealplan"
	aggregateShopping = "shopping"
	aggregateSnack    = "snack"
)

var notFoundTranslations = []struct {
	repoErr   error
	domainErr *domainerrors.BaseError
}{
	{repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound},
	{repository.ErrSessionNotFound, domainerrors.ErrSessionNotFound},
	{repository.ErrShoppingLogNotFound, domainerrors.ErrShoppingLogNotFound},
	{repository.ErrShoppingDetailNotFound, domainerrors.ErrShoppingDetailNotFound},
	{repository.ErrSnackLogNotFound, domainerrors.ErrSnackLogNotFound},
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
}

// translateRepoError turns repository not-found sentinels into their domain error and wraps
// anything else with msg.
func translateRepoError(err error, msg string) error {
	if err == nil {
		return nil
	}

	for _, t := range notFoundTranslations {
		if errors.Is(err, t.repoErr) {
			return t.domainErr.WrapMessage(msg)
		}
	}

	return errors.Wrap(err, msg)
}

// eventPublisher sends aggregate change events after a transaction has committed.
// Publishing failures are logged and never fail the request.
type eventPublisher struct {
	publisher service.EventPublisher
	now       func() time.Time
}

func (p eventPublisher) publish(ctx context.Context, logger *slog.Logger, eventType string, aggregateID, ownerID uuid.UUID) {
	if p.publisher == nil {
		return
	}

	event := &service.AggregateEvent{
		EventID:     uuid.New().String(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		AggregateID: aggregateID.String(),
		OwnerID:     ownerID.String(),
		OccurredAt:  p.now().UTC(),
	}
	if err := p.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish aggregate event",
			slog.String("type", eventType),
			slog.String("aggregate_id", event.AggregateID),
			slog.Any("error", err),
		)
	}
}

func recorderOrNop(r metrics.Recorder) metrics.Recorder {
	if r == nil {
		return metrics.Nop{}
	}

	return r
}
