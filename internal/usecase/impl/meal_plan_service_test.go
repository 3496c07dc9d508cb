package impl

import (
	"context"
	"testing"
	"time"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	mockRepo "mealplanner/internal/mocks/repository"
	mockSvc "mealplanner/internal/mocks/service"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mealPlanServiceFixtures struct {
	service      usecase.MealPlanUsecase
	txManager    *mockRepo.MockTransactionManager
	mealPlanRepo *mockRepo.MockMealPlanRepository
	publisher    *mockSvc.MockEventPublisher
	factory      *mockRepo.MockRepositoryFactory
}

func createTestMealPlanService(t *testing.T) mealPlanServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mealPlanRepo := mockRepo.NewMockMealPlanRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().MealPlanRepo().Return(mealPlanRepo).Maybe()

	svc := NewMealPlanService(MealPlanServiceParams{
		TxManager:    txManager,
		MealPlanRepo: mealPlanRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return mealPlanServiceFixtures{
		service:      svc,
		txManager:    txManager,
		mealPlanRepo: mealPlanRepo,
		publisher:    publisher,
		factory:      factory,
	}
}

func (fx mealPlanServiceFixtures) expectEvent(eventType string, aggregateID uuid.UUID, err error) {
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.AggregateEvent) bool {
			return event.Type == eventType && event.AggregateID == aggregateID.String()
		})).
		Return(err)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := entity.ParseDate(value)
	require.NoError(t, err)

	return date
}

func TestMealPlanService_CreateMealPlan_Success(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.MealPlanInput{
		Date:    "2026-03-02",
		Weekday: "monday",
		Sessions: []usecase.SessionInput{
			{Mealtime: "Lunch", Menus: []usecase.MenuInput{{Name: "Nasi Goreng"}, {Name: " Es Teh ", Note: strPtr("less sugar")}}},
			{Mealtime: "Breakfast", Menus: []usecase.MenuInput{{Name: "Bubur Ayam"}}},
		},
	}

	expectTx(fx.txManager, fx.factory)

	var (
		createdPlan     *entity.MealPlan
		createdSessions []*entity.Session
	)
	fx.mealPlanRepo.EXPECT().
		CreateMealPlan(ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(_ context.Context, plan *entity.MealPlan) {
			createdPlan = plan
		}).
		Return(nil)
	fx.mealPlanRepo.EXPECT().
		CreateSessions(ctx, mock.AnythingOfType("[]*entity.Session")).
		Run(func(_ context.Context, sessions []*entity.Session) {
			createdSessions = sessions
		}).
		Return(nil)
	fx.mealPlanRepo.EXPECT().
		FindMealPlanByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.MealPlan, error) {
			stored := *createdPlan
			stored.Sessions = createdSessions
			stored.SortSessions()

			return &stored, nil
		})
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.AggregateEvent) bool {
			return event.Type == service.EventMealPlanCreated && event.OwnerID == ownerID.String()
		})).
		Return(nil)

	plan, err := fx.service.CreateMealPlan(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, ownerID, plan.OwnerID)
	assert.Equal(t, mustDate(t, "2026-03-02"), plan.Date)
	assert.Equal(t, "Monday", plan.Weekday)
	require.Len(t, plan.Sessions, 2)
	assert.Equal(t, 3, plan.MenuCount())

	// Breakfast sorts before Lunch even though it came second in the payload.
	assert.Equal(t, entity.MealtimeBreakfast, plan.Sessions[0].Mealtime)
	assert.Equal(t, 1, plan.Sessions[0].Position)
	assert.Equal(t, entity.MealtimeLunch, plan.Sessions[1].Mealtime)
	assert.Equal(t, 0, plan.Sessions[1].Position)

	lunch := plan.Sessions[1]
	require.Len(t, lunch.Menus, 2)
	assert.Equal(t, "Nasi Goreng", lunch.Menus[0].Name)
	assert.Equal(t, "Es Teh", lunch.Menus[1].Name)
	assert.Equal(t, 1, lunch.Menus[1].Position)
	require.NotNil(t, lunch.Menus[1].Note)
	assert.Equal(t, "less sugar", *lunch.Menus[1].Note)

	for _, session := range createdSessions {
		assert.Equal(t, createdPlan.ID, session.MealPlanID)
		for _, menu := range session.Menus {
			assert.Equal(t, session.ID, menu.SessionID)
		}
	}
}

func TestMealPlanService_CreateMealPlan_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expectTx(fx.txManager, fx.factory)

	fx.mealPlanRepo.EXPECT().CreateMealPlan(ctx, mock.Anything).Return(nil)
	fx.mealPlanRepo.EXPECT().CreateSessions(ctx, mock.Anything).Return(nil)
	stored := &entity.MealPlan{ID: uuid.New(), OwnerID: ownerID}
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, mock.Anything).Return(stored, nil)
	fx.expectEvent(service.EventMealPlanCreated, stored.ID, errors.New("pubsub unavailable"))

	plan, err := fx.service.CreateMealPlan(ctx, ownerID, &usecase.MealPlanInput{Date: "2026-03-02", Weekday: "Monday"})

	require.NoError(t, err)
	assert.Equal(t, stored, plan)
}

func TestMealPlanService_CreateMealPlan_Validation(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.MealPlanInput
		wantFields []string
	}{
		{
			name:       "missing date and weekday",
			input:      &usecase.MealPlanInput{},
			wantFields: []string{"date", "weekday"},
		},
		{
			name:       "malformed date",
			input:      &usecase.MealPlanInput{Date: "02/03/2026", Weekday: "Monday"},
			wantFields: []string{"date"},
		},
		{
			name:       "unknown weekday",
			input:      &usecase.MealPlanInput{Date: "2026-03-02", Weekday: "Funday"},
			wantFields: []string{"weekday"},
		},
		{
			name: "bad mealtime and blank menu",
			input: &usecase.MealPlanInput{
				Date:    "2026-03-02",
				Weekday: "Monday",
				Sessions: []usecase.SessionInput{
					{Mealtime: "Brunch", Menus: []usecase.MenuInput{{Name: "  "}}},
				},
			},
			wantFields: []string{"sessions[0].mealtime", "sessions[0].menus[0].name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMealPlanService(t)

			plan, err := fx.service.CreateMealPlan(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.Nil(t, plan)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestMealPlanService_UpdateMealPlan_ReplacesSessionTree(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	planID := uuid.New()
	oldSessionID := uuid.New()
	existing := &entity.MealPlan{
		ID:      planID,
		OwnerID: ownerID,
		Date:    mustDate(t, "2026-03-02"),
		Weekday: "Monday",
		Sessions: []*entity.Session{{
			ID:         oldSessionID,
			MealPlanID: planID,
			Mealtime:   entity.MealtimeLunch,
			Menus:      []*entity.Menu{{ID: uuid.New(), SessionID: oldSessionID, Name: "Nasi Goreng"}},
		}},
	}

	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, planID).Return(existing, nil).Once()
	fx.mealPlanRepo.EXPECT().
		UpdateMealPlan(ctx, mock.MatchedBy(func(plan *entity.MealPlan) bool {
			return plan.ID == planID && plan.Weekday == "Tuesday"
		})).
		Return(nil)
	fx.mealPlanRepo.EXPECT().DeleteSessionsByMealPlanID(ctx, planID).Return(nil)

	var recreated []*entity.Session
	fx.mealPlanRepo.EXPECT().
		CreateSessions(ctx, mock.AnythingOfType("[]*entity.Session")).
		Run(func(_ context.Context, sessions []*entity.Session) {
			recreated = sessions
		}).
		Return(nil)
	fx.mealPlanRepo.EXPECT().
		FindMealPlanByID(ctx, planID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.MealPlan, error) {
			return &entity.MealPlan{
				ID:       planID,
				OwnerID:  ownerID,
				Date:     mustDate(t, "2026-03-03"),
				Weekday:  "Tuesday",
				Sessions: recreated,
			}, nil
		}).
		Once()
	fx.expectEvent(service.EventMealPlanUpdated, planID, nil)

	plan, err := fx.service.UpdateMealPlan(ctx, ownerID, planID, &usecase.MealPlanInput{
		Date:    "2026-03-03",
		Weekday: "Tuesday",
		Sessions: []usecase.SessionInput{
			{Mealtime: "Lunch", Menus: []usecase.MenuInput{{Name: "Soto Ayam"}}},
		},
	})

	require.NoError(t, err)
	require.Len(t, plan.Sessions, 1)
	assert.NotEqual(t, oldSessionID, plan.Sessions[0].ID)
	require.Len(t, plan.Sessions[0].Menus, 1)
	assert.Equal(t, "Soto Ayam", plan.Sessions[0].Menus[0].Name)
	assert.Equal(t, planID, plan.Sessions[0].MealPlanID)
}

func TestMealPlanService_UpdateMealPlan_ForeignOwnerIsForbidden(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	planID := uuid.New()
	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().
		FindMealPlanByID(ctx, planID).
		Return(&entity.MealPlan{ID: planID, OwnerID: uuid.New()}, nil)

	plan, err := fx.service.UpdateMealPlan(ctx, uuid.New(), planID, &usecase.MealPlanInput{Date: "2026-03-02", Weekday: "Monday"})

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.False(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}

func TestMealPlanService_GetMealPlan_Ownership(t *testing.T) {
	ownerID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name    string
		found   *entity.MealPlan
		findErr error
		wantErr error
	}{
		{name: "owned", found: &entity.MealPlan{ID: planID, OwnerID: ownerID}},
		{name: "foreign", found: &entity.MealPlan{ID: planID, OwnerID: uuid.New()}, wantErr: domainerrors.ErrForbidden},
		{name: "missing", findErr: repository.ErrMealPlanNotFound, wantErr: domainerrors.ErrMealPlanNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMealPlanService(t)
			ctx := context.Background()

			fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, planID).Return(tt.found, tt.findErr)

			plan, err := fx.service.GetMealPlan(ctx, ownerID, planID)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, plan)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, plan)
		})
	}
}

func TestMealPlanService_AddSession_AppendsAtNextPosition(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := &entity.MealPlan{ID: uuid.New(), OwnerID: ownerID}

	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, plan.ID).Return(plan, nil)
	fx.mealPlanRepo.EXPECT().CountSessions(ctx, plan.ID).Return(2, nil)
	fx.mealPlanRepo.EXPECT().
		CreateSessions(ctx, mock.MatchedBy(func(sessions []*entity.Session) bool {
			return len(sessions) == 1 && len(sessions[0].Menus) == 1
		})).
		Return(nil)
	fx.mealPlanRepo.EXPECT().UpdateMealPlan(ctx, plan).Return(nil)
	fx.expectEvent(service.EventMealPlanUpdated, plan.ID, nil)

	session, err := fx.service.AddSession(ctx, ownerID, plan.ID, &usecase.SessionInput{
		Mealtime: "Dinner",
		Menus:    []usecase.MenuInput{{Name: "Rendang"}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MealtimeDinner, session.Mealtime)
	assert.Equal(t, 2, session.Position)
	assert.Equal(t, plan.ID, session.MealPlanID)
	assert.Equal(t, "Rendang", session.Menus[0].Name)
}

func TestMealPlanService_AddMenuToSession(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := &entity.MealPlan{ID: uuid.New(), OwnerID: ownerID}
	session := &entity.Session{ID: uuid.New(), MealPlanID: plan.ID, Mealtime: entity.MealtimeLunch}

	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, plan.ID).Return(plan, nil)
	fx.mealPlanRepo.EXPECT().CountMenus(ctx, session.ID).Return(1, nil)
	fx.mealPlanRepo.EXPECT().
		CreateMenus(ctx, mock.MatchedBy(func(menus []*entity.Menu) bool {
			return len(menus) == 1 && menus[0].SessionID == session.ID
		})).
		Return(nil)
	fx.mealPlanRepo.EXPECT().UpdateMealPlan(ctx, plan).Return(nil)
	fx.expectEvent(service.EventMealPlanUpdated, plan.ID, nil)

	menu, err := fx.service.AddMenuToSession(ctx, ownerID, session.ID, &usecase.MenuInput{Name: "Kerupuk"})

	require.NoError(t, err)
	assert.Equal(t, "Kerupuk", menu.Name)
	assert.Equal(t, 1, menu.Position)
}

func TestMealPlanService_AddMenuToSession_Errors(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		fx := createTestMealPlanService(t)
		ctx := context.Background()
		sessionID := uuid.New()

		expectTx(fx.txManager, fx.factory)
		fx.mealPlanRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

		menu, err := fx.service.AddMenuToSession(ctx, uuid.New(), sessionID, &usecase.MenuInput{Name: "Kerupuk"})

		require.Error(t, err)
		assert.Nil(t, menu)
		assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
	})

	t.Run("session of a foreign plan", func(t *testing.T) {
		fx := createTestMealPlanService(t)
		ctx := context.Background()
		plan := &entity.MealPlan{ID: uuid.New(), OwnerID: uuid.New()}
		session := &entity.Session{ID: uuid.New(), MealPlanID: plan.ID}

		expectTx(fx.txManager, fx.factory)
		fx.mealPlanRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, plan.ID).Return(plan, nil)

		menu, err := fx.service.AddMenuToSession(ctx, uuid.New(), session.ID, &usecase.MenuInput{Name: "Kerupuk"})

		require.Error(t, err)
		assert.Nil(t, menu)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestMealPlanService_GetMealPlansByDate(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	day := mustDate(t, "2026-03-02")
	fx.mealPlanRepo.EXPECT().
		FindMealPlansByOwnerAndDateRange(ctx, ownerID, day, day).
		Return([]*entity.MealPlan{}, nil)

	plans, err := fx.service.GetMealPlansByDate(ctx, ownerID, "2026-03-02")

	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestMealPlanService_GetMealPlansByRange(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		fx := createTestMealPlanService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.mealPlanRepo.EXPECT().
			FindMealPlansByOwnerAndDateRange(ctx, ownerID, mustDate(t, "2026-03-01"), mustDate(t, "2026-03-07")).
			Return([]*entity.MealPlan{{ID: uuid.New(), OwnerID: ownerID}}, nil)

		plans, err := fx.service.GetMealPlansByRange(ctx, ownerID, &usecase.DateRangeInput{StartDate: "2026-03-01", EndDate: "2026-03-07"})

		require.NoError(t, err)
		assert.Len(t, plans, 1)
	})

	t.Run("end before start", func(t *testing.T) {
		fx := createTestMealPlanService(t)

		plans, err := fx.service.GetMealPlansByRange(context.Background(), uuid.New(), &usecase.DateRangeInput{StartDate: "2026-03-07", EndDate: "2026-03-01"})

		require.Error(t, err)
		assert.Nil(t, plans)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestMealPlanService_DeleteMealPlan(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	planID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, planID).Return(&entity.MealPlan{ID: planID, OwnerID: ownerID}, nil)
	fx.mealPlanRepo.EXPECT().DeleteMealPlan(ctx, planID).Return(nil)
	fx.expectEvent(service.EventMealPlanDeleted, planID, nil)

	err := fx.service.DeleteMealPlan(ctx, ownerID, planID)

	require.NoError(t, err)
}

func TestMealPlanService_DeleteMealPlan_ForeignOwnerIsForbidden(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	planID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, planID).Return(&entity.MealPlan{ID: planID, OwnerID: uuid.New()}, nil)

	err := fx.service.DeleteMealPlan(ctx, uuid.New(), planID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.False(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
	fx.mealPlanRepo.AssertNotCalled(t, "DeleteSessionsByMealPlanID", mock.Anything, mock.Anything)
	fx.mealPlanRepo.AssertNotCalled(t, "DeleteMealPlan", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMealPlanService_DeleteMealPlan_Missing(t *testing.T) {
	fx := createTestMealPlanService(t)

	ctx := context.Background()
	planID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.mealPlanRepo.EXPECT().FindMealPlanByID(ctx, planID).Return(nil, repository.ErrMealPlanNotFound)

	err := fx.service.DeleteMealPlan(ctx, uuid.New(), planID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMealPlanNotFound))
}
