package impl

import (
	"context"
	"log/slog"
	"math"
	"path"
	"strconv"
	"strings"
	"time"

	"mealplanner/config"
	deliverycontext "mealplanner/internal/delivery/context"
	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	"mealplanner/internal/infra/metrics"
	"mealplanner/internal/usecase"
	"mealplanner/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxDetailsPerRequest = 200

var allowedReceiptTypes = []string{"image/jpeg", "image/png", "image/webp", "image/heic", "application/pdf"}

// shoppingService implements the ShoppingUsecase interface.
type shoppingService struct {
	txManager       repository.TransactionManager
	shoppingRepo    repository.ShoppingRepository
	receipts        service.ReceiptStorage
	events          eventPublisher
	recorder        metrics.Recorder
	receiptMaxBytes int64
	logger          *slog.Logger
}

// ShoppingServiceParams holds dependencies for ShoppingService, injected by Fx.
type ShoppingServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ShoppingRepo   repository.ShoppingRepository
	ReceiptStorage service.ReceiptStorage
	Publisher      service.EventPublisher
	Recorder       metrics.Recorder `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewShoppingService is the constructor for shoppingService.
func NewShoppingService(params ShoppingServiceParams) usecase.ShoppingUsecase {
	var maxBytes int64
	if params.Config != nil && params.Config.Receipts != nil {
		maxBytes = params.Config.Receipts.MaxBytes
	}

	return &shoppingService{
		txManager:       params.TxManager,
		shoppingRepo:    params.ShoppingRepo,
		receipts:        params.ReceiptStorage,
		events:          eventPublisher{publisher: params.Publisher, now: time.Now},
		recorder:        recorderOrNop(params.Recorder),
		receiptMaxBytes: maxBytes,
		logger:          params.Logger,
	}
}

func (srv *shoppingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShoppingLog stores the log and its initial details together. With details the total
// is their line-cost sum, otherwise the supplied total (default 0) is kept.
func (srv *shoppingService) CreateShoppingLog(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateShoppingLogInput) (*entity.ShoppingLog, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	verr := &domainerrors.ValidationError{}
	shoppingLog := &entity.ShoppingLog{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Topic:      requireText(verr, "topic", input.Topic),
		StoreName:  strings.TrimSpace(input.StoreName),
		Date:       parseDateField(verr, "date", input.Date),
		Status:     parseStatus(verr, input.Status),
		ReceiptRef: trimOptional(input.ReceiptRef),
	}
	details := srv.buildDetails(verr, shoppingLog.ID, input.Details)
	if input.TotalAmount != nil {
		if *input.TotalAmount < 0 || math.IsNaN(*input.TotalAmount) {
			verr.Add("totalAmount", "must not be negative")
		}
		shoppingLog.TotalAmount = entity.RoundAmount(*input.TotalAmount)
	}
	if len(details) > 0 {
		shoppingLog.TotalAmount = entity.SumLineCosts(details)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var created *entity.ShoppingLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		if err := repo.CreateShoppingLog(ctx, shoppingLog); err != nil {
			return errors.Wrap(err, "failed to create shopping log")
		}
		if err := repo.CreateShoppingDetails(ctx, details); err != nil {
			return translateRepoError(err, "failed to create shopping details")
		}

		var findErr error
		created, findErr = repo.FindShoppingLogByID(ctx, shoppingLog.ID)

		return translateRepoError(findErr, "failed to read back shopping log")
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "create", err)
	if err != nil {
		srv.log(ctx).Error("Failed to create shopping log", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create shopping log transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingCreated, created.ID, ownerID)

	return created, nil
}

// UpdateShoppingLog patches scalar fields only. Details are never touched, and a supplied
// total is ignored once the log has details.
func (srv *shoppingService) UpdateShoppingLog(ctx context.Context, ownerID, logID uuid.UUID, input *usecase.UpdateShoppingLogInput) (*entity.ShoppingLog, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	var updated *entity.ShoppingLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		shoppingLog, err := loadOwnedShoppingLog(ctx, repo, ownerID, logID)
		if err != nil {
			return err
		}
		if err := applyShoppingLogUpdate(shoppingLog, input); err != nil {
			return err
		}
		if err := repo.UpdateShoppingLog(ctx, shoppingLog); err != nil {
			return translateRepoError(err, "failed to update shopping log")
		}

		var findErr error
		updated, findErr = repo.FindShoppingLogByID(ctx, logID)

		return translateRepoError(findErr, "failed to read back shopping log")
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "update", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to update shopping log", slog.Any("logID", logID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update shopping log transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingUpdated, logID, ownerID)

	return updated, nil
}

func (srv *shoppingService) GetShoppingLogs(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShoppingLog, error) {
	logs, err := srv.shoppingRepo.FindShoppingLogsByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list shopping logs", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list shopping logs")
	}

	return logs, nil
}

func (srv *shoppingService) GetShoppingLog(ctx context.Context, ownerID, logID uuid.UUID) (*entity.ShoppingLog, error) {
	return loadOwnedShoppingLog(ctx, srv.shoppingRepo, ownerID, logID)
}

// DeleteShoppingLog removes the log and its details. An attached receipt is deleted after commit.
func (srv *shoppingService) DeleteShoppingLog(ctx context.Context, ownerID, logID uuid.UUID) error {
	var receiptRef *string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		shoppingLog, err := loadOwnedShoppingLog(ctx, repo, ownerID, logID)
		if err != nil {
			return err
		}
		receiptRef = shoppingLog.ReceiptRef

		return translateRepoError(repo.DeleteShoppingLog(ctx, logID), "failed to delete shopping log")
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "delete", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to delete shopping log", slog.Any("logID", logID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete shopping log transaction")
	}

	if receiptRef != nil && ownsReceiptKey(ownerID, *receiptRef) {
		srv.deleteReceiptBlob(ctx, *receiptRef)
	}
	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingDeleted, logID, ownerID)

	return nil
}

// CreateShoppingDetails bulk-inserts details into an owned log and refreshes its total.
func (srv *shoppingService) CreateShoppingDetails(ctx context.Context, ownerID, logID uuid.UUID, items []usecase.ShoppingDetailInput) ([]*entity.ShoppingDetail, error) {
	verr := &domainerrors.ValidationError{}
	if len(items) == 0 {
		verr.Add("details", "at least one detail is required")
	}
	details := srv.buildDetails(verr, logID, items)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		if _, err := loadOwnedShoppingLog(ctx, repo, ownerID, logID); err != nil {
			return err
		}
		if err := repo.CreateShoppingDetails(ctx, details); err != nil {
			return translateRepoError(err, "failed to create shopping details")
		}
		_, err := recomputeTotal(ctx, repo, logID)

		return err
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "create_details", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to create shopping details", slog.Any("logID", logID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create shopping details transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingDetailsChanged, logID, ownerID)

	return details, nil
}

func (srv *shoppingService) GetShoppingDetails(ctx context.Context, ownerID, logID uuid.UUID) ([]*entity.ShoppingDetail, error) {
	shoppingLog, err := loadOwnedShoppingLog(ctx, srv.shoppingRepo, ownerID, logID)
	if err != nil {
		return nil, err
	}

	return shoppingLog.Details, nil
}

// UpdateShoppingDetail resolves detail, then log, then owner before patching the detail.
func (srv *shoppingService) UpdateShoppingDetail(ctx context.Context, ownerID, detailID uuid.UUID, input *usecase.UpdateShoppingDetailInput) (*entity.ShoppingDetail, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	var (
		detail *entity.ShoppingDetail
		logID  uuid.UUID
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		var err error
		detail, err = loadOwnedShoppingDetail(ctx, repo, ownerID, detailID)
		if err != nil {
			return err
		}
		logID = detail.ShoppingLogID

		if err := applyShoppingDetailUpdate(detail, input); err != nil {
			return err
		}
		if err := repo.UpdateShoppingDetail(ctx, detail); err != nil {
			return translateRepoError(err, "failed to update shopping detail")
		}
		_, err = recomputeTotal(ctx, repo, logID)

		return err
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "update_detail", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to update shopping detail", slog.Any("detailID", detailID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update shopping detail transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingDetailsChanged, logID, ownerID)

	return detail, nil
}

func (srv *shoppingService) DeleteShoppingDetail(ctx context.Context, ownerID, detailID uuid.UUID) error {
	var logID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		detail, err := loadOwnedShoppingDetail(ctx, repo, ownerID, detailID)
		if err != nil {
			return err
		}
		logID = detail.ShoppingLogID

		if err := repo.DeleteShoppingDetail(ctx, detailID); err != nil {
			return translateRepoError(err, "failed to delete shopping detail")
		}
		_, err = recomputeTotal(ctx, repo, logID)

		return err
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "delete_detail", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to delete shopping detail", slog.Any("detailID", detailID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete shopping detail transaction")
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingDetailsChanged, logID, ownerID)

	return nil
}

// RecomputeTotal rewrites the cached total from the current details. A log without details
// keeps its supplied total.
func (srv *shoppingService) RecomputeTotal(ctx context.Context, ownerID, logID uuid.UUID) (*entity.ShoppingLog, error) {
	var result *entity.ShoppingLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		shoppingLog, err := loadOwnedShoppingLog(ctx, repo, ownerID, logID)
		if err != nil {
			return err
		}
		if len(shoppingLog.Details) > 0 {
			total := entity.SumLineCosts(shoppingLog.Details)
			if err := repo.UpdateShoppingLogTotal(ctx, logID, total); err != nil {
				return translateRepoError(err, "failed to update shopping total")
			}
			shoppingLog.TotalAmount = total
		}
		result = shoppingLog

		return nil
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "recompute", err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute recompute total transaction")
	}

	return result, nil
}

// ReconcileTotal is the ownerless variant used by the ledger worker. It reports whether the
// stored total was stale. A deleted log is not an error.
func (srv *shoppingService) ReconcileTotal(ctx context.Context, logID uuid.UUID) (bool, error) {
	changed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		shoppingLog, err := repo.FindShoppingLogByID(ctx, logID)
		if errors.Is(err, repository.ErrShoppingLogNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find shopping log")
		}
		if len(shoppingLog.Details) == 0 {
			return nil
		}

		total := entity.SumLineCosts(shoppingLog.Details)
		if total == entity.RoundAmount(shoppingLog.TotalAmount) {
			return nil
		}
		if err := repo.UpdateShoppingLogTotal(ctx, logID, total); err != nil {
			return translateRepoError(err, "failed to update shopping total")
		}
		changed = true

		srv.log(ctx).Info("Reconciled stale shopping total",
			slog.Any("logID", logID),
			slog.Float64("stored", shoppingLog.TotalAmount),
			slog.Float64("computed", total),
		)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute reconcile total transaction")
	}

	return changed, nil
}

// AttachReceipt uploads the file first, then points the log at it. The previous receipt is
// removed once the new reference is committed.
func (srv *shoppingService) AttachReceipt(ctx context.Context, ownerID, logID uuid.UUID, input *usecase.ReceiptInput) (*entity.ShoppingLog, error) {
	if err := srv.validateReceipt(input); err != nil {
		return nil, err
	}

	if _, err := loadOwnedShoppingLog(ctx, srv.shoppingRepo, ownerID, logID); err != nil {
		return nil, err
	}

	key := receiptKey(ownerID, logID, input.Filename)
	if err := srv.receipts.Put(ctx, key, input.Data, input.ContentType); err != nil {
		srv.log(ctx).Error("Failed to upload receipt", slog.Any("logID", logID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload receipt")
	}

	var (
		previous *string
		updated  *entity.ShoppingLog
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ShoppingRepo()

		shoppingLog, err := loadOwnedShoppingLog(ctx, repo, ownerID, logID)
		if err != nil {
			return err
		}
		previous = shoppingLog.ReceiptRef
		shoppingLog.ReceiptRef = &key
		if err := repo.UpdateShoppingLog(ctx, shoppingLog); err != nil {
			return translateRepoError(err, "failed to store receipt reference")
		}
		updated = shoppingLog

		return nil
	})
	srv.recorder.RecordAggregateWrite(aggregateShopping, "attach_receipt", err)
	if err != nil {
		srv.deleteReceiptBlob(ctx, key)

		return nil, errors.Wrap(err, "failed to execute attach receipt transaction")
	}

	if previous != nil && *previous != key && ownsReceiptKey(ownerID, *previous) {
		srv.deleteReceiptBlob(ctx, *previous)
	}
	srv.events.publish(ctx, srv.log(ctx), service.EventShoppingUpdated, logID, ownerID)

	return updated, nil
}

func (srv *shoppingService) GetReceipt(ctx context.Context, ownerID, logID uuid.UUID) (*usecase.Receipt, error) {
	shoppingLog, err := loadOwnedShoppingLog(ctx, srv.shoppingRepo, ownerID, logID)
	if err != nil {
		return nil, err
	}
	if shoppingLog.ReceiptRef == nil || !ownsReceiptKey(ownerID, *shoppingLog.ReceiptRef) {
		return nil, domainerrors.ErrReceiptNotFound
	}

	data, contentType, err := srv.receipts.Get(ctx, *shoppingLog.ReceiptRef)
	if err != nil {
		return nil, errors.Wrap(err, "failed to download receipt")
	}

	return &usecase.Receipt{ContentType: contentType, Data: data}, nil
}

func (srv *shoppingService) validateReceipt(input *usecase.ReceiptInput) error {
	if input == nil || len(input.Data) == 0 {
		return domainerrors.NewValidationError("file", "is required")
	}
	if srv.receiptMaxBytes > 0 && int64(len(input.Data)) > srv.receiptMaxBytes {
		return domainerrors.ErrReceiptTooLarge.WithDetails(map[string]string{"maxSize": util.FormatBytes(srv.receiptMaxBytes)})
	}

	contentType := strings.ToLower(strings.TrimSpace(strings.Split(input.ContentType, ";")[0]))
	for _, allowed := range allowedReceiptTypes {
		if contentType == allowed {
			input.ContentType = contentType

			return nil
		}
	}

	return domainerrors.NewValidationError("file", "must be a JPEG, PNG, WEBP, HEIC image or a PDF")
}

func (srv *shoppingService) deleteReceiptBlob(ctx context.Context, key string) {
	if err := srv.receipts.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete receipt blob", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *shoppingService) buildDetails(verr *domainerrors.ValidationError, logID uuid.UUID, items []usecase.ShoppingDetailInput) []*entity.ShoppingDetail {
	if len(items) > maxDetailsPerRequest {
		verr.Add("details", "too many details in one request")
	}

	details := make([]*entity.ShoppingDetail, 0, len(items))
	for i := range items {
		item := items[i]
		validateDetail(verr, "details["+strconv.Itoa(i)+"]", &item)
		details = append(details, &entity.ShoppingDetail{
			ID:            uuid.New(),
			ShoppingLogID: logID,
			ItemName:      item.ItemName,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			UnitCost:      item.UnitCost,
			IsChecked:     item.IsChecked,
		})
	}

	return details
}

func applyShoppingLogUpdate(shoppingLog *entity.ShoppingLog, input *usecase.UpdateShoppingLogInput) error {
	verr := &domainerrors.ValidationError{}
	if input.Topic != nil {
		shoppingLog.Topic = requireText(verr, "topic", *input.Topic)
	}
	if input.StoreName != nil {
		shoppingLog.StoreName = strings.TrimSpace(*input.StoreName)
	}
	if input.Date != nil {
		shoppingLog.Date = parseDateField(verr, "date", *input.Date)
	}
	if input.Status != nil {
		if strings.TrimSpace(*input.Status) == "" {
			verr.Add("status", "must be Planned or Done")
		} else {
			shoppingLog.Status = parseStatus(verr, *input.Status)
		}
	}
	if input.ReceiptRef != nil {
		shoppingLog.ReceiptRef = trimOptional(input.ReceiptRef)
	}
	if input.TotalAmount != nil && len(shoppingLog.Details) == 0 {
		if *input.TotalAmount < 0 || math.IsNaN(*input.TotalAmount) {
			verr.Add("totalAmount", "must not be negative")
		}
		shoppingLog.TotalAmount = entity.RoundAmount(*input.TotalAmount)
	}
	if len(shoppingLog.Details) > 0 {
		shoppingLog.TotalAmount = entity.SumLineCosts(shoppingLog.Details)
	}

	return verr.OrNil()
}

func applyShoppingDetailUpdate(detail *entity.ShoppingDetail, input *usecase.UpdateShoppingDetailInput) error {
	patched := usecase.ShoppingDetailInput{
		ItemName:  detail.ItemName,
		Quantity:  detail.Quantity,
		Unit:      detail.Unit,
		UnitCost:  detail.UnitCost,
		IsChecked: detail.IsChecked,
	}
	if input.ItemName != nil {
		patched.ItemName = *input.ItemName
	}
	if input.Quantity != nil {
		patched.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		patched.Unit = *input.Unit
	}
	if input.UnitCost != nil {
		patched.UnitCost = *input.UnitCost
	}
	if input.IsChecked != nil {
		patched.IsChecked = *input.IsChecked
	}

	verr := &domainerrors.ValidationError{}
	validateDetail(verr, "detail", &patched)
	if err := verr.OrNil(); err != nil {
		return err
	}

	detail.ItemName = patched.ItemName
	detail.Quantity = patched.Quantity
	detail.Unit = patched.Unit
	detail.UnitCost = patched.UnitCost
	detail.IsChecked = patched.IsChecked

	return nil
}

// recomputeTotal must run inside the transaction that changed the details.
func recomputeTotal(ctx context.Context, repo repository.ShoppingRepository, logID uuid.UUID) (float64, error) {
	details, err := repo.FindShoppingDetailsByLogID(ctx, logID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load shopping details")
	}

	total := entity.SumLineCosts(details)
	if err := repo.UpdateShoppingLogTotal(ctx, logID, total); err != nil {
		return 0, translateRepoError(err, "failed to update shopping total")
	}

	return total, nil
}

func loadOwnedShoppingLog(ctx context.Context, repo repository.ShoppingRepository, ownerID, logID uuid.UUID) (*entity.ShoppingLog, error) {
	shoppingLog, err := repo.FindShoppingLogByID(ctx, logID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find shopping log")
	}
	if err := service.AssertOwned(shoppingLog, ownerID); err != nil {
		return nil, err
	}

	return shoppingLog, nil
}

func loadOwnedShoppingDetail(ctx context.Context, repo repository.ShoppingRepository, ownerID, detailID uuid.UUID) (*entity.ShoppingDetail, error) {
	detail, err := repo.FindShoppingDetailByID(ctx, detailID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find shopping detail")
	}
	if _, err := loadOwnedShoppingLog(ctx, repo, ownerID, detail.ShoppingLogID); err != nil {
		return nil, err
	}

	return detail, nil
}

// receiptKey namespaces receipts per owner and log. Only the file extension of the upload
// name is kept.
func receiptKey(ownerID, logID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	if len(ext) > 8 || strings.ContainsAny(ext, " /?#") {
		ext = ""
	}

	return receiptPrefix(ownerID) + logID.String() + "/" + uuid.NewString() + ext
}

func receiptPrefix(ownerID uuid.UUID) string {
	return "receipts/" + ownerID.String() + "/"
}

// ownsReceiptKey guards blob access: receiptRef is client-writable, so only keys under the
// owner's prefix are ever read or deleted.
func ownsReceiptKey(ownerID uuid.UUID, key string) bool {
	return strings.HasPrefix(key, receiptPrefix(ownerID)) && !strings.Contains(key, "..")
}
