package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to PLANNER_TEST_POSTGRES_DSN and applies migrations, skipping when unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("PLANNER_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PLANNER_TEST_POSTGRES_DSN not set")
	}

	require.NoError(t, migrations.Up(dsn))

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{ID: uuid.New(), Email: uuid.NewString() + "@example.com", Name: "Tester"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestMealPlanRepository_ReplaceChildrenInTransaction(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	txManager := NewTransactionManager(db)

	plan := &entity.MealPlan{
		ID:      uuid.New(),
		OwnerID: user.ID,
		Date:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Weekday: "Wednesday",
	}
	session := &entity.Session{ID: uuid.New(), MealPlanID: plan.ID, Mealtime: entity.MealtimeLunch}
	session.Menus = []*entity.Menu{
		{ID: uuid.New(), SessionID: session.ID, Name: "Rice", Position: 0},
		{ID: uuid.New(), SessionID: session.ID, Name: "Soup", Position: 1},
	}
	plan.Sessions = []*entity.Session{session}

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.MealPlanRepo().CreateMealPlan(ctx, plan); err != nil {
			return err
		}

		return f.MealPlanRepo().CreateSessions(ctx, plan.Sessions)
	})
	require.NoError(t, err)

	repo := NewMealPlanRepository(db)
	got, err := repo.FindMealPlanByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, []string{"Rice", "Soup"}, []string{got.Sessions[0].Menus[0].Name, got.Sessions[0].Menus[1].Name})

	replacement := &entity.Session{ID: uuid.New(), MealPlanID: plan.ID, Mealtime: entity.MealtimeDinner}
	replacement.Menus = []*entity.Menu{{ID: uuid.New(), SessionID: replacement.ID, Name: "Noodles"}}

	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.MealPlanRepo().DeleteSessionsByMealPlanID(ctx, plan.ID); err != nil {
			return err
		}

		return f.MealPlanRepo().CreateSessions(ctx, []*entity.Session{replacement})
	})
	require.NoError(t, err)

	got, err = repo.FindMealPlanByID(repository.WithStrongRead(ctx), plan.ID)
	require.NoError(t, err)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, entity.MealtimeDinner, got.Sessions[0].Mealtime)
	assert.Equal(t, 1, got.MenuCount())

	require.NoError(t, repo.DeleteMealPlan(ctx, plan.ID))
	_, err = repo.FindMealPlanByID(ctx, plan.ID)
	assert.ErrorIs(t, err, repository.ErrMealPlanNotFound)

	var orphanMenus int64
	require.NoError(t, db.Table("menus").Where("session_id = ?", replacement.ID).Count(&orphanMenus).Error)
	assert.Zero(t, orphanMenus)
}

func TestMealPlanRepository_RollbackLeavesNoPartialTree(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)

	plan := &entity.MealPlan{ID: uuid.New(), OwnerID: user.ID, Date: time.Now(), Weekday: "Monday"}
	bad := &entity.Session{ID: uuid.New(), MealPlanID: plan.ID, Mealtime: "Brunch"}

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.MealPlanRepo().CreateMealPlan(ctx, plan); err != nil {
			return err
		}

		return f.MealPlanRepo().CreateSessions(ctx, []*entity.Session{bad})
	})
	require.Error(t, err)

	_, err = NewMealPlanRepository(db).FindMealPlanByID(ctx, plan.ID)
	assert.ErrorIs(t, err, repository.ErrMealPlanNotFound)
}

func TestShoppingRepository_DetailLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	repo := NewShoppingRepository(db)

	log := &entity.ShoppingLog{
		ID:      uuid.New(),
		OwnerID: user.ID,
		Topic:   "Weekly",
		Date:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Status:  entity.ShoppingStatusPlanned,
	}
	require.NoError(t, repo.CreateShoppingLog(ctx, log))

	details := []*entity.ShoppingDetail{
		{ID: uuid.New(), ShoppingLogID: log.ID, ItemName: "Eggs", Quantity: 2, Unit: "dozen", UnitCost: 3.5},
		{ID: uuid.New(), ShoppingLogID: log.ID, ItemName: "Milk", Quantity: 1, Unit: "l", UnitCost: 1.2},
	}
	require.NoError(t, repo.CreateShoppingDetails(ctx, details))
	require.NoError(t, repo.UpdateShoppingLogTotal(ctx, log.ID, entity.SumLineCosts(details)))

	got, err := repo.FindShoppingLogByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Len(t, got.Details, 2)
	assert.InDelta(t, 8.2, got.TotalAmount, 0.001)

	details[0].IsChecked = true
	require.NoError(t, repo.UpdateShoppingDetail(ctx, details[0]))
	require.NoError(t, repo.DeleteShoppingDetail(ctx, details[1].ID))

	left, err := repo.FindShoppingDetailsByLogID(ctx, log.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.True(t, left[0].IsChecked)

	assert.ErrorIs(t, repo.DeleteShoppingDetail(ctx, details[1].ID), repository.ErrShoppingDetailNotFound)
	require.NoError(t, repo.DeleteShoppingLog(ctx, log.ID))
	assert.ErrorIs(t, repo.DeleteShoppingLog(ctx, log.ID), repository.ErrShoppingLogNotFound)
}

func TestSnackRepository_FilterByDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db)
	repo := NewSnackRepository(db)

	for day := 1; day <= 3; day++ {
		require.NoError(t, repo.Create(ctx, &entity.SnackLog{
			ID:       uuid.New(),
			OwnerID:  user.ID,
			Date:     time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
			ItemName: "Chips",
			Amount:   1.5,
		}))
	}

	from := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	got, err := repo.FindByOwner(ctx, user.ID, repository.SnackFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
