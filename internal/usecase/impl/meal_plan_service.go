package impl

import (
	"context"
	"log/slog"
	"time"

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

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	txManager    repository.TransactionManager
	mealPlanRepo repository.MealPlanRepository
	events       eventPublisher
	recorder     metrics.Recorder
	logger       *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MealPlanRepo repository.MealPlanRepository
	Publisher    service.EventPublisher
	Recorder     metrics.Recorder `optional:"true"`
	Logger       *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		txManager:    params.TxManager,
		mealPlanRepo: params.MealPlanRepo,
		events:       eventPublisher{publisher: params.Publisher, now: time.Now},
		recorder:     recorderOrNop(params.Recorder),
		logger:       params.Logger,
	}
}

func (srv *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMealPlan inserts the plan, its sessions and their menus in one transaction and returns
// the aggregate as stored.
func (srv *mealPlanService) CreateMealPlan(ctx context.Context, ownerID uuid.UUID, input *usecase.MealPlanInput) (*entity.MealPlan, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	plan := &entity.MealPlan{ID: uuid.New(), OwnerID: ownerID}
	sessions, err := srv.applyInput(plan, input)
	if err != nil {
		return nil, err
	}

	var created *entity.MealPlan
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.MealPlanRepo()

		if err := repo.CreateMealPlan(ctx, plan); err != nil {
			return errors.Wrap(err, "failed to create meal plan")
		}
		if err := repo.CreateSessions(ctx, sessions); err != nil {
			return translateRepoError(err, "failed to create meal sessions")
		}

		var findErr error
		created, findErr = repo.FindMealPlanByID(ctx, plan.ID)

		return translateRepoError(findErr, "failed to read back meal plan")
	})
	srv.recorder.RecordAggregateWrite(aggregateMealPlan, "create", err)
	if err != nil {
		srv.log(ctx).Error("Failed to create meal plan", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create meal plan transaction")
	}

	srv.log(ctx).Debug("Meal plan created",
		slog.Any("mealPlanID", created.ID),
		slog.Int("sessions", len(created.Sessions)),
		slog.Int("menus", created.MenuCount()),
	)
	srv.events.publish(ctx, srv.log(ctx), service.EventMealPlanCreated, created.ID, ownerID)

	return created, nil
}

// UpdateMealPlan replaces date, weekday and the whole session tree. Session and menu IDs
// are regenerated on every update.
func (srv *mealPlanService) UpdateMealPlan(ctx context.Context, ownerID, mealPlanID uuid.UUID, input *usecase.MealPlanInput) (*entity.MealPlan, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	plan := &entity.MealPlan{ID: mealPlanID, OwnerID: ownerID}
	sessions, err := srv.applyInput(plan, input)
	if err != nil {
		return nil, err
	}

	var updated *entity.MealPlan
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.MealPlanRepo()

		if _, err := loadOwnedMealPlan(ctx, repo, ownerID, mealPlanID); err != nil {
			return err
		}
		if err := repo.UpdateMealPlan(ctx, plan); err != nil {
			return translateRepoError(err, "failed to update meal plan")
		}
		if err := repo.DeleteSessionsByMealPlanID(ctx, mealPlanID); err != nil {
			return errors.Wrap(err, "failed to delete meal sessions")
		}
		if err := repo.CreateSessions(ctx, sessions); err != nil {
			return translateRepoError(err, "failed to recreate meal sessions")
		}

		var findErr error
		updated, findErr = repo.FindMealPlanByID(ctx, mealPlanID)

		return translateRepoError(findErr, "failed to read back meal plan")
	})
	srv.recorder.RecordAggregateWrite(aggregateMealPlan, "update", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to update meal plan", slog.Any("mealPlanID", mealPlanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update meal plan transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventMealPlanUpdated, mealPlanID, ownerID)

	return updated, nil
}

// AddSession appends one session with its menus to an existing plan.
func (srv *mealPlanService) AddSession(ctx context.Context, ownerID, mealPlanID uuid.UUID, input *usecase.SessionInput) (*entity.Session, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	var session *entity.Session
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.MealPlanRepo()

		plan, err := loadOwnedMealPlan(ctx, repo, ownerID, mealPlanID)
		if err != nil {
			return err
		}

		position, err := repo.CountSessions(ctx, mealPlanID)
		if err != nil {
			return errors.Wrap(err, "failed to count meal sessions")
		}

		verr := &domainerrors.ValidationError{}
		sessions := buildSessions(verr, mealPlanID, []usecase.SessionInput{*input}, position)
		if err := verr.OrNil(); err != nil {
			return err
		}
		if err := repo.CreateSessions(ctx, sessions); err != nil {
			return translateRepoError(err, "failed to create meal session")
		}
		if err := repo.UpdateMealPlan(ctx, plan); err != nil {
			return translateRepoError(err, "failed to touch meal plan")
		}
		session = sessions[0]

		return nil
	})
	srv.recorder.RecordAggregateWrite(aggregateMealPlan, "add_session", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to add meal session", slog.Any("mealPlanID", mealPlanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add session transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventMealPlanUpdated, mealPlanID, ownerID)

	return session, nil
}

// AddMenuToSession resolves session, then plan, then owner before appending the menu.
func (srv *mealPlanService) AddMenuToSession(ctx context.Context, ownerID, sessionID uuid.UUID, input *usecase.MenuInput) (*entity.Menu, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	var (
		menu       *entity.Menu
		mealPlanID uuid.UUID
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.MealPlanRepo()

		session, err := repo.FindSessionByID(ctx, sessionID)
		if err != nil {
			return translateRepoError(err, "failed to find meal session")
		}
		plan, err := loadOwnedMealPlan(ctx, repo, ownerID, session.MealPlanID)
		if err != nil {
			return err
		}
		mealPlanID = plan.ID

		position, err := repo.CountMenus(ctx, sessionID)
		if err != nil {
			return errors.Wrap(err, "failed to count menus")
		}

		verr := &domainerrors.ValidationError{}
		menus := buildMenus(verr, "", sessionID, []usecase.MenuInput{*input}, position)
		if err := verr.OrNil(); err != nil {
			return err
		}
		if err := repo.CreateMenus(ctx, menus); err != nil {
			return translateRepoError(err, "failed to create menu")
		}
		if err := repo.UpdateMealPlan(ctx, plan); err != nil {
			return translateRepoError(err, "failed to touch meal plan")
		}
		menu = menus[0]

		return nil
	})
	srv.recorder.RecordAggregateWrite(aggregateMealPlan, "add_menu", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to add menu", slog.Any("sessionID", sessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add menu transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventMealPlanUpdated, mealPlanID, ownerID)

	return menu, nil
}

// GetMealPlans lists every plan of the owner, newest date first.
func (srv *mealPlanService) GetMealPlans(ctx context.Context, ownerID uuid.UUID) ([]*entity.MealPlan, error) {
	plans, err := srv.mealPlanRepo.FindMealPlansByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list meal plans", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	return plans, nil
}

func (srv *mealPlanService) GetMealPlan(ctx context.Context, ownerID, mealPlanID uuid.UUID) (*entity.MealPlan, error) {
	return loadOwnedMealPlan(ctx, srv.mealPlanRepo, ownerID, mealPlanID)
}

func (srv *mealPlanService) GetMealPlansByDate(ctx context.Context, ownerID uuid.UUID, date string) ([]*entity.MealPlan, error) {
	verr := &domainerrors.ValidationError{}
	day := parseDateField(verr, "date", date)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return srv.findInRange(ctx, ownerID, day, day)
}

// GetMealPlansByRange returns plans whose date falls inside [StartDate, EndDate].
func (srv *mealPlanService) GetMealPlansByRange(ctx context.Context, ownerID uuid.UUID, input *usecase.DateRangeInput) ([]*entity.MealPlan, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("startDate", "is required")
	}

	verr := &domainerrors.ValidationError{}
	start := parseDateField(verr, "startDate", input.StartDate)
	end := parseDateField(verr, "endDate", input.EndDate)
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		verr.Add("endDate", "must not be before startDate")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return srv.findInRange(ctx, ownerID, start, end)
}

func (srv *mealPlanService) findInRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*entity.MealPlan, error) {
	plans, err := srv.mealPlanRepo.FindMealPlansByOwnerAndDateRange(ctx, ownerID, start, end)
	if err != nil {
		srv.log(ctx).Error("Failed to query meal plans by date", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query meal plans by date")
	}

	return plans, nil
}

// DeleteMealPlan removes the plan together with its sessions and menus.
func (srv *mealPlanService) DeleteMealPlan(ctx context.Context, ownerID, mealPlanID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.MealPlanRepo()

		if _, err := loadOwnedMealPlan(ctx, repo, ownerID, mealPlanID); err != nil {
			return err
		}

		return translateRepoError(repo.DeleteMealPlan(ctx, mealPlanID), "failed to delete meal plan")
	})
	srv.recorder.RecordAggregateWrite(aggregateMealPlan, "delete", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to delete meal plan", slog.Any("mealPlanID", mealPlanID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete meal plan transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventMealPlanDeleted, mealPlanID, ownerID)

	return nil
}

// applyInput validates input, sets the plan scalars and builds the replacement session tree.
func (srv *mealPlanService) applyInput(plan *entity.MealPlan, input *usecase.MealPlanInput) ([]*entity.Session, error) {
	verr := &domainerrors.ValidationError{}
	plan.Date = parseDateField(verr, "date", input.Date)
	plan.Weekday = normalizeWeekday(verr, input.Weekday)
	sessions := buildSessions(verr, plan.ID, input.Sessions, 0)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// loadOwnedMealPlan returns NotFound when the plan is absent and Forbidden when another
// user owns it.
func loadOwnedMealPlan(ctx context.Context, repo repository.MealPlanRepository, ownerID, mealPlanID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := repo.FindMealPlanByID(ctx, mealPlanID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find meal plan")
	}
	if err := service.AssertOwned(plan, ownerID); err != nil {
		return nil, err
	}

	return plan, nil
}
