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

// snackRepository implements repository.SnackRepository.
type snackRepository struct {
	db *gorm.DB
}

// NewSnackRepository is the constructor for snackRepository.
func NewSnackRepository(db *gorm.DB) repository.SnackRepository {
	return &snackRepository{db: db}
}

func (repo *snackRepository) Create(ctx context.Context, snack *entity.SnackLog) error {
	snackM := fromSnackDomain(snack)

	if err := repo.db.WithContext(ctx).Create(snackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("snack log owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create snack log")
	}

	snack.CreatedAt = snackM.CreatedAt
	snack.UpdatedAt = snackM.UpdatedAt

	return nil
}

func (repo *snackRepository) Update(ctx context.Context, snack *entity.SnackLog) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SnackLogModel{}).
		Where("id = ?", snack.ID).
		Updates(map[string]any{
			"date":       datatypes.Date(entity.TruncateDate(snack.Date)),
			"item_name":  snack.ItemName,
			"place":      snack.Place,
			"amount":     entity.RoundAmount(snack.Amount),
			"note":       snack.Note,
			"updated_at": now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update snack log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSnackLogNotFound
	}

	snack.UpdatedAt = now

	return nil
}

func (repo *snackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SnackLog, error) {
	var snackM model.SnackLogModel
	if err := reader(ctx, repo.db).Where("id = ?", id).First(&snackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnackLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find snack log")
	}

	return toSnackDomain(&snackM), nil
}

func (repo *snackRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.SnackFilter) ([]*entity.SnackLog, error) {
	query := reader(ctx, repo.db).Where("owner_id = ?", ownerID)
	if filter.From != nil {
		query = query.Where("date >= ?", datatypes.Date(entity.TruncateDate(*filter.From)))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", datatypes.Date(entity.TruncateDate(*filter.To)))
	}

	var snackModels []*model.SnackLogModel
	if err := query.Order("date DESC").Order("created_at DESC").Find(&snackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list snack logs")
	}

	snacks := make([]*entity.SnackLog, 0, len(snackModels))
	for _, m := range snackModels {
		snacks = append(snacks, toSnackDomain(m))
	}

	return snacks, nil
}

func (repo *snackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SnackLogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete snack log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSnackLogNotFound
	}

	return nil
}

func toSnackDomain(data *model.SnackLogModel) *entity.SnackLog {
	return &entity.SnackLog{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Date:      entity.TruncateDate(time.Time(data.Date)),
		ItemName:  data.ItemName,
		Place:     data.Place,
		Amount:    data.Amount,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSnackDomain(data *entity.SnackLog) *model.SnackLogModel {
	return &model.SnackLogModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Date:      datatypes.Date(entity.TruncateDate(data.Date)),
		ItemName:  data.ItemName,
		Place:     data.Place,
		Amount:    entity.RoundAmount(data.Amount),
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
