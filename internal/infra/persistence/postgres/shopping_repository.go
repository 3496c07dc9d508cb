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

// shoppingRepository implements repository.ShoppingRepository.
type shoppingRepository struct {
	db *gorm.DB
}

// NewShoppingRepository is the constructor for shoppingRepository.
func NewShoppingRepository(db *gorm.DB) repository.ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (repo *shoppingRepository) CreateShoppingLog(ctx context.Context, log *entity.ShoppingLog) error {
	logM := fromShoppingLogDomain(log)

	if err := repo.db.WithContext(ctx).Omit("Details").Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("shopping log owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shopping status")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping log")
	}

	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

func (repo *shoppingRepository) UpdateShoppingLog(ctx context.Context, log *entity.ShoppingLog) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingLogModel{}).
		Where("id = ?", log.ID).
		Updates(map[string]any{
			"topic":        log.Topic,
			"store_name":   log.StoreName,
			"date":         datatypes.Date(entity.TruncateDate(log.Date)),
			"status":       string(log.Status),
			"receipt_ref":  log.ReceiptRef,
			"total_amount": entity.RoundAmount(log.TotalAmount),
			"updated_at":   now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shopping status")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shopping log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingLogNotFound
	}

	log.UpdatedAt = now

	return nil
}

func (repo *shoppingRepository) UpdateShoppingLogTotal(ctx context.Context, id uuid.UUID, total float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingLogModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_amount": entity.RoundAmount(total),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shopping total")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingLogNotFound
	}

	return nil
}

func (repo *shoppingRepository) FindShoppingLogByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingLog, error) {
	var logM model.ShoppingLogModel
	if err := withDetails(reader(ctx, repo.db)).Where("id = ?", id).First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShoppingLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping log")
	}

	return toShoppingLogDomain(&logM), nil
}

func (repo *shoppingRepository) FindShoppingLogsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingLog, error) {
	var logModels []*model.ShoppingLogModel
	err := withDetails(reader(ctx, repo.db)).
		Where("owner_id = ?", ownerID).
		Order("date DESC").Order("created_at DESC").
		Find(&logModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping logs")
	}

	logs := make([]*entity.ShoppingLog, 0, len(logModels))
	for _, m := range logModels {
		logs = append(logs, toShoppingLogDomain(m))
	}

	return logs, nil
}

func (repo *shoppingRepository) DeleteShoppingLog(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("shopping_log_id = ?", id).Delete(&model.ShoppingDetailModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shopping details")
	}

	result := db.Where("id = ?", id).Delete(&model.ShoppingLogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shopping log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingLogNotFound
	}

	return nil
}

func (repo *shoppingRepository) CreateShoppingDetails(ctx context.Context, details []*entity.ShoppingDetail) error {
	if len(details) == 0 {
		return nil
	}

	detailModels := make([]*model.ShoppingDetailModel, 0, len(details))
	for _, d := range details {
		detailModels = append(detailModels, fromShoppingDetailDomain(d))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(detailModels, bulkInsertBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShoppingLogNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity and unit cost must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping details")
	}
	for i, d := range details {
		d.CreatedAt = detailModels[i].CreatedAt
		d.UpdatedAt = detailModels[i].UpdatedAt
	}

	return nil
}

func (repo *shoppingRepository) FindShoppingDetailsByLogID(ctx context.Context, logID uuid.UUID) ([]*entity.ShoppingDetail, error) {
	var detailModels []*model.ShoppingDetailModel
	err := reader(ctx, repo.db).
		Where("shopping_log_id = ?", logID).
		Order("created_at ASC").Order("id ASC").
		Find(&detailModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping details")
	}

	details := make([]*entity.ShoppingDetail, 0, len(detailModels))
	for _, m := range detailModels {
		details = append(details, toShoppingDetailDomain(m))
	}

	return details, nil
}

func (repo *shoppingRepository) FindShoppingDetailByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingDetail, error) {
	var detailM model.ShoppingDetailModel
	if err := reader(ctx, repo.db).Where("id = ?", id).First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShoppingDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping detail")
	}

	return toShoppingDetailDomain(&detailM), nil
}

func (repo *shoppingRepository) UpdateShoppingDetail(ctx context.Context, detail *entity.ShoppingDetail) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingDetailModel{}).
		Where("id = ?", detail.ID).
		Updates(map[string]any{
			"item_name":  detail.ItemName,
			"quantity":   detail.Quantity,
			"unit":       detail.Unit,
			"unit_cost":  detail.UnitCost,
			"is_checked": detail.IsChecked,
			"updated_at": now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity and unit cost must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shopping detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingDetailNotFound
	}

	detail.UpdatedAt = now

	return nil
}

func (repo *shoppingRepository) DeleteShoppingDetail(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShoppingDetailModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shopping detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingDetailNotFound
	}

	return nil
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Details", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC").Order("id ASC")
	})
}

// --- Mapper Functions ---

func toShoppingLogDomain(data *model.ShoppingLogModel) *entity.ShoppingLog {
	details := make([]*entity.ShoppingDetail, 0, len(data.Details))
	for _, d := range data.Details {
		details = append(details, toShoppingDetailDomain(d))
	}

	return &entity.ShoppingLog{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Topic:       data.Topic,
		StoreName:   data.StoreName,
		Date:        entity.TruncateDate(time.Time(data.Date)),
		Status:      entity.ShoppingStatus(data.Status),
		ReceiptRef:  data.ReceiptRef,
		TotalAmount: data.TotalAmount,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShoppingLogDomain(data *entity.ShoppingLog) *model.ShoppingLogModel {
	return &model.ShoppingLogModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Topic:       data.Topic,
		StoreName:   data.StoreName,
		Date:        datatypes.Date(entity.TruncateDate(data.Date)),
		Status:      string(data.Status),
		ReceiptRef:  data.ReceiptRef,
		TotalAmount: entity.RoundAmount(data.TotalAmount),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toShoppingDetailDomain(data *model.ShoppingDetailModel) *entity.ShoppingDetail {
	return &entity.ShoppingDetail{
		ID:            data.ID,
		ShoppingLogID: data.ShoppingLogID,
		ItemName:      data.ItemName,
		Quantity:      data.Quantity,
		Unit:          data.Unit,
		UnitCost:      data.UnitCost,
		IsChecked:     data.IsChecked,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromShoppingDetailDomain(data *entity.ShoppingDetail) *model.ShoppingDetailModel {
	return &model.ShoppingDetailModel{
		ID:            data.ID,
		ShoppingLogID: data.ShoppingLogID,
		ItemName:      data.ItemName,
		Quantity:      data.Quantity,
		Unit:          data.Unit,
		UnitCost:      data.UnitCost,
		IsChecked:     data.IsChecked,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
