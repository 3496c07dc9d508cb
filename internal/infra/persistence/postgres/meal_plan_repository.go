package postgres

import (
	"context"
	"time"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const bulkInsertBatchSize = 100

// mealPlanRepository implements repository.MealPlanRepository.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (repo *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entity.MealPlan) error {
	planM := fromMealPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Omit("Sessions").Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("meal plan owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal plan")
	}

	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

func (repo *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entity.MealPlan) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.MealPlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"date":       datatypes.Date(entity.TruncateDate(plan.Date)),
			"weekday":    plan.Weekday,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	plan.UpdatedAt = now

	return nil
}

func (repo *mealPlanRepository) FindMealPlanByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	var planM model.MealPlanModel
	if err := repo.withTree(reader(ctx, repo.db)).Where("id = ?", id).First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}

	return toMealPlanDomain(&planM), nil
}

func (repo *mealPlanRepository) FindMealPlansByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.MealPlan, error) {
	var planModels []*model.MealPlanModel
	err := repo.withTree(reader(ctx, repo.db)).
		Where("owner_id = ?", ownerID).
		Order("date DESC").Order("created_at DESC").
		Find(&planModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	return toMealPlanDomains(planModels), nil
}

func (repo *mealPlanRepository) FindMealPlansByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]*entity.MealPlan, error) {
	var planModels []*model.MealPlanModel
	err := repo.withTree(reader(ctx, repo.db)).
		Where("owner_id = ? AND date BETWEEN ? AND ?", ownerID,
			datatypes.Date(entity.TruncateDate(start)), datatypes.Date(entity.TruncateDate(end))).
		Order("date ASC").Order("created_at ASC").
		Find(&planModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans by date range")
	}

	return toMealPlanDomains(planModels), nil
}

func (repo *mealPlanRepository) DeleteMealPlan(ctx context.Context, id uuid.UUID) error {
	if err := repo.DeleteSessionsByMealPlanID(ctx, id); err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MealPlanModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	return nil
}

func (repo *mealPlanRepository) CreateSessions(ctx context.Context, sessions []*entity.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	sessionModels := make([]*model.MealSessionModel, 0, len(sessions))
	var menus []*entity.Menu
	for _, s := range sessions {
		sessionModels = append(sessionModels, fromSessionDomain(s))
		menus = append(menus, s.Menus...)
	}

	if err := repo.db.WithContext(ctx).Omit("Menus").CreateInBatches(sessionModels, bulkInsertBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMealPlanNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid mealtime")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal sessions")
	}
	for i, s := range sessions {
		s.CreatedAt = sessionModels[i].CreatedAt
	}

	return repo.CreateMenus(ctx, menus)
}

func (repo *mealPlanRepository) DeleteSessionsByMealPlanID(ctx context.Context, mealPlanID uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	sessionIDs := db.Model(&model.MealSessionModel{}).Select("id").Where("meal_plan_id = ?", mealPlanID)

	if err := db.Where("session_id IN (?)", sessionIDs).Delete(&model.MenuModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete menus")
	}
	if err := db.Where("meal_plan_id = ?", mealPlanID).Delete(&model.MealSessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete meal sessions")
	}

	return nil
}

func (repo *mealPlanRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.MealSessionModel
	if err := reader(ctx, repo.db).Where("id = ?", id).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *mealPlanRepository) CountSessions(ctx context.Context, mealPlanID uuid.UUID) (int, error) {
	var count int64
	err := reader(ctx, repo.db).Model(&model.MealSessionModel{}).Where("meal_plan_id = ?", mealPlanID).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count meal sessions")
	}

	return int(count), nil
}

func (repo *mealPlanRepository) CreateMenus(ctx context.Context, menus []*entity.Menu) error {
	if len(menus) == 0 {
		return nil
	}

	menuModels := make([]*model.MenuModel, 0, len(menus))
	for _, m := range menus {
		menuModels = append(menuModels, fromMenuDomain(m))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(menuModels, bulkInsertBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSessionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menus")
	}
	for i, m := range menus {
		m.CreatedAt = menuModels[i].CreatedAt
	}

	return nil
}

func (repo *mealPlanRepository) CountMenus(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var count int64
	err := reader(ctx, repo.db).Model(&model.MenuModel{}).Where("session_id = ?", sessionID).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count menus")
	}

	return int(count), nil
}

// withTree preloads sessions and menus in insertion order.
func (repo *mealPlanRepository) withTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sessions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Sessions.Menus", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") })
}

// --- Mapper Functions ---

func toMealPlanDomains(data []*model.MealPlanModel) []*entity.MealPlan {
	plans := make([]*entity.MealPlan, 0, len(data))
	for _, m := range data {
		plans = append(plans, toMealPlanDomain(m))
	}

	return plans
}

func toMealPlanDomain(data *model.MealPlanModel) *entity.MealPlan {
	if data == nil {
		return nil
	}

	sessions := make([]*entity.Session, 0, len(data.Sessions))
	for _, s := range data.Sessions {
		sessions = append(sessions, toSessionDomain(s))
	}

	plan := &entity.MealPlan{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Date:      entity.TruncateDate(time.Time(data.Date)),
		Weekday:   data.Weekday,
		Sessions:  sessions,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	plan.SortSessions()

	return plan
}

func fromMealPlanDomain(data *entity.MealPlan) *model.MealPlanModel {
	return &model.MealPlanModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Date:      datatypes.Date(entity.TruncateDate(data.Date)),
		Weekday:   data.Weekday,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toSessionDomain(data *model.MealSessionModel) *entity.Session {
	menus := make([]*entity.Menu, 0, len(data.Menus))
	for _, m := range data.Menus {
		menus = append(menus, &entity.Menu{
			ID:        m.ID,
			SessionID: m.SessionID,
			Name:      m.Name,
			Note:      m.Note,
			Position:  m.Position,
			CreatedAt: m.CreatedAt,
		})
	}

	return &entity.Session{
		ID:         data.ID,
		MealPlanID: data.MealPlanID,
		Mealtime:   entity.Mealtime(data.Mealtime),
		Position:   data.Position,
		Menus:      menus,
		CreatedAt:  data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.MealSessionModel {
	return &model.MealSessionModel{
		ID:         data.ID,
		MealPlanID: data.MealPlanID,
		Mealtime:   string(data.Mealtime),
		Position:   data.Position,
		CreatedAt:  data.CreatedAt,
	}
}

func fromMenuDomain(data *entity.Menu) *model.MenuModel {
	return &model.MenuModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		Name:      data.Name,
		Note:      data.Note,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
	}
}
