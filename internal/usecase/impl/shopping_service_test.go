package impl

import (
	"context"
	"strings"
	"testing"

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

type shoppingServiceFixtures struct {
	service      usecase.ShoppingUsecase
	txManager    *mockRepo.MockTransactionManager
	shoppingRepo *mockRepo.MockShoppingRepository
	receipts     *mockSvc.MockReceiptStorage
	publisher    *mockSvc.MockEventPublisher
	factory      *mockRepo.MockRepositoryFactory
}

func createTestShoppingService(t *testing.T) shoppingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	shoppingRepo := mockRepo.NewMockShoppingRepository(t)
	receipts := mockSvc.NewMockReceiptStorage(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ShoppingRepo().Return(shoppingRepo).Maybe()

	svc := NewShoppingService(ShoppingServiceParams{
		TxManager:      txManager,
		ShoppingRepo:   shoppingRepo,
		ReceiptStorage: receipts,
		Publisher:      publisher,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})

	return shoppingServiceFixtures{
		service:      svc,
		txManager:    txManager,
		shoppingRepo: shoppingRepo,
		receipts:     receipts,
		publisher:    publisher,
		factory:      factory,
	}
}

func (fx shoppingServiceFixtures) expectEvent(eventType string, aggregateID uuid.UUID) {
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.AggregateEvent) bool {
			return event.Type == eventType && event.AggregateID == aggregateID.String()
		})).
		Return(nil)
}

func newTestDetail(logID uuid.UUID, name string, quantity, unitCost float64) *entity.ShoppingDetail {
	return &entity.ShoppingDetail{
		ID:            uuid.New(),
		ShoppingLogID: logID,
		ItemName:      name,
		Quantity:      quantity,
		Unit:          "pcs",
		UnitCost:      unitCost,
	}
}

func TestShoppingService_CreateShoppingLog_TotalIsSumOfDetails(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateShoppingLogInput{
		Topic:       "Weekly groceries",
		StoreName:   " Pasar Baru ",
		Date:        "2026-03-02",
		TotalAmount: floatPtr(100),
		Details: []usecase.ShoppingDetailInput{
			{ItemName: "Telur", Quantity: 2, Unit: "tray", UnitCost: 1.5},
			{ItemName: "Beras", Quantity: 3, Unit: "kg", UnitCost: 2.25},
		},
	}

	expectTx(fx.txManager, fx.factory)

	var stored *entity.ShoppingLog
	fx.shoppingRepo.EXPECT().
		CreateShoppingLog(ctx, mock.AnythingOfType("*entity.ShoppingLog")).
		Run(func(_ context.Context, log *entity.ShoppingLog) {
			stored = log
		}).
		Return(nil)
	fx.shoppingRepo.EXPECT().
		CreateShoppingDetails(ctx, mock.AnythingOfType("[]*entity.ShoppingDetail")).
		Run(func(_ context.Context, details []*entity.ShoppingDetail) {
			stored.Details = details
		}).
		Return(nil)
	fx.shoppingRepo.EXPECT().
		FindShoppingLogByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.ShoppingLog, error) {
			return stored, nil
		})
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	created, err := fx.service.CreateShoppingLog(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Equal(t, "Pasar Baru", created.StoreName)
	assert.Equal(t, entity.ShoppingStatusPlanned, created.Status)
	assert.InDelta(t, 9.75, created.TotalAmount, 0.0001)
	require.Len(t, created.Details, 2)
	for _, detail := range created.Details {
		assert.Equal(t, created.ID, detail.ShoppingLogID)
	}
}

func TestShoppingService_CreateShoppingLog_KeepsTotalWithoutDetails(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	expectTx(fx.txManager, fx.factory)

	var stored *entity.ShoppingLog
	fx.shoppingRepo.EXPECT().
		CreateShoppingLog(ctx, mock.AnythingOfType("*entity.ShoppingLog")).
		Run(func(_ context.Context, log *entity.ShoppingLog) {
			stored = log
		}).
		Return(nil)
	fx.shoppingRepo.EXPECT().CreateShoppingDetails(ctx, mock.Anything).Return(nil)
	fx.shoppingRepo.EXPECT().
		FindShoppingLogByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.ShoppingLog, error) {
			return stored, nil
		})
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	created, err := fx.service.CreateShoppingLog(ctx, uuid.New(), &usecase.CreateShoppingLogInput{
		Topic:       "Market run",
		Date:        "2026-03-02",
		Status:      "Done",
		TotalAmount: floatPtr(12.5),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ShoppingStatusDone, created.Status)
	assert.InDelta(t, 12.5, created.TotalAmount, 0.0001)
}

func TestShoppingService_CreateShoppingLog_Validation(t *testing.T) {
	fx := createTestShoppingService(t)

	created, err := fx.service.CreateShoppingLog(context.Background(), uuid.New(), &usecase.CreateShoppingLogInput{
		Topic:  "Weekly groceries",
		Date:   "2026-03-02",
		Status: "Bought",
		Details: []usecase.ShoppingDetailInput{
			{ItemName: "Telur", Quantity: 0, UnitCost: 1.5},
			{ItemName: "Beras", Quantity: 1, UnitCost: -2},
		},
	})

	require.Error(t, err)
	assert.Nil(t, created)

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"status", "details[0].quantity", "details[1].unitCost"}, fields)
}

func TestShoppingService_UpdateShoppingLog_LeavesDetailsIntact(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	details := []*entity.ShoppingDetail{
		newTestDetail(logID, "Telur", 2, 1.5),
		newTestDetail(logID, "Beras", 3, 2.25),
		newTestDetail(logID, "Minyak", 1, 4),
	}
	existing := &entity.ShoppingLog{
		ID:          logID,
		OwnerID:     ownerID,
		Topic:       "Weekly groceries",
		Status:      entity.ShoppingStatusPlanned,
		TotalAmount: 13.75,
		Details:     details,
	}

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(existing, nil)
	fx.shoppingRepo.EXPECT().
		UpdateShoppingLog(ctx, mock.MatchedBy(func(log *entity.ShoppingLog) bool {
			return log.Status == entity.ShoppingStatusDone && log.TotalAmount == 13.75
		})).
		Return(nil)
	fx.expectEvent(service.EventShoppingUpdated, logID)

	updated, err := fx.service.UpdateShoppingLog(ctx, ownerID, logID, &usecase.UpdateShoppingLogInput{
		Status:      strPtr("Done"),
		TotalAmount: floatPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ShoppingStatusDone, updated.Status)
	assert.InDelta(t, 13.75, updated.TotalAmount, 0.0001)
	require.Len(t, updated.Details, 3)
	assert.Equal(t, details[0].ID, updated.Details[0].ID)
	assert.Equal(t, details[2].ID, updated.Details[2].ID)
}

func TestShoppingService_UpdateShoppingLog_ForeignOwnerIsForbidden(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	logID := uuid.New()
	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().
		FindShoppingLogByID(ctx, logID).
		Return(&entity.ShoppingLog{ID: logID, OwnerID: uuid.New()}, nil)

	updated, err := fx.service.UpdateShoppingLog(ctx, uuid.New(), logID, &usecase.UpdateShoppingLogInput{Status: strPtr("Done")})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShoppingService_CreateShoppingDetails_RecomputesTotal(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	existing := newTestDetail(logID, "Telur", 2, 1.5)

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().
		FindShoppingLogByID(ctx, logID).
		Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID, Details: []*entity.ShoppingDetail{existing}}, nil)

	var inserted []*entity.ShoppingDetail
	fx.shoppingRepo.EXPECT().
		CreateShoppingDetails(ctx, mock.AnythingOfType("[]*entity.ShoppingDetail")).
		Run(func(_ context.Context, details []*entity.ShoppingDetail) {
			inserted = details
		}).
		Return(nil)
	fx.shoppingRepo.EXPECT().
		FindShoppingDetailsByLogID(ctx, logID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) ([]*entity.ShoppingDetail, error) {
			return append([]*entity.ShoppingDetail{existing}, inserted...), nil
		})
	fx.shoppingRepo.EXPECT().UpdateShoppingLogTotal(ctx, logID, 7.0).Return(nil)
	fx.expectEvent(service.EventShoppingDetailsChanged, logID)

	details, err := fx.service.CreateShoppingDetails(ctx, ownerID, logID, []usecase.ShoppingDetailInput{
		{ItemName: "Gula", Quantity: 2, Unit: "kg", UnitCost: 2},
	})

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Gula", details[0].ItemName)
	assert.Equal(t, logID, details[0].ShoppingLogID)
}

func TestShoppingService_CreateShoppingDetails_RequiresItems(t *testing.T) {
	fx := createTestShoppingService(t)

	details, err := fx.service.CreateShoppingDetails(context.Background(), uuid.New(), uuid.New(), nil)

	require.Error(t, err)
	assert.Nil(t, details)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShoppingService_UpdateShoppingDetail(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	detail := newTestDetail(logID, "Telur", 2, 1.5)

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingDetailByID(ctx, detail.ID).Return(detail, nil)
	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID}, nil)
	fx.shoppingRepo.EXPECT().
		UpdateShoppingDetail(ctx, mock.MatchedBy(func(d *entity.ShoppingDetail) bool {
			return d.ID == detail.ID && d.Quantity == 4 && d.IsChecked
		})).
		Return(nil)
	fx.shoppingRepo.EXPECT().FindShoppingDetailsByLogID(ctx, logID).Return([]*entity.ShoppingDetail{detail}, nil)
	fx.shoppingRepo.EXPECT().UpdateShoppingLogTotal(ctx, logID, 6.0).Return(nil)
	fx.expectEvent(service.EventShoppingDetailsChanged, logID)

	checked := true
	updated, err := fx.service.UpdateShoppingDetail(ctx, ownerID, detail.ID, &usecase.UpdateShoppingDetailInput{
		Quantity:  floatPtr(4),
		IsChecked: &checked,
	})

	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.Quantity)
	assert.Equal(t, "Telur", updated.ItemName)
	assert.True(t, updated.IsChecked)
}

func TestShoppingService_UpdateShoppingDetail_RejectsInvalidPatch(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	detail := newTestDetail(logID, "Telur", 2, 1.5)

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingDetailByID(ctx, detail.ID).Return(detail, nil)
	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID}, nil)

	updated, err := fx.service.UpdateShoppingDetail(ctx, ownerID, detail.ID, &usecase.UpdateShoppingDetailInput{
		Quantity: floatPtr(-1),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 2.0, detail.Quantity)
}

func TestShoppingService_DeleteShoppingDetail_ForeignOwnerIsForbidden(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	logID := uuid.New()
	detail := newTestDetail(logID, "Telur", 2, 1.5)

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingDetailByID(ctx, detail.ID).Return(detail, nil)
	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: uuid.New()}, nil)

	err := fx.service.DeleteShoppingDetail(ctx, uuid.New(), detail.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShoppingService_DeleteShoppingLog_ForeignOwnerIsForbidden(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	logID := uuid.New()
	receiptRef := "receipts/someone-else/receipt.png"

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).
		Return(&entity.ShoppingLog{ID: logID, OwnerID: uuid.New(), ReceiptRef: &receiptRef}, nil)

	err := fx.service.DeleteShoppingLog(ctx, uuid.New(), logID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.False(t, errors.Is(err, domainerrors.ErrShoppingLogNotFound))
	fx.shoppingRepo.AssertNotCalled(t, "DeleteShoppingLog", mock.Anything, mock.Anything)
	fx.receipts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestShoppingService_DeleteShoppingDetail_Missing(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	detailID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingDetailByID(ctx, detailID).Return(nil, repository.ErrShoppingDetailNotFound)

	err := fx.service.DeleteShoppingDetail(ctx, uuid.New(), detailID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShoppingDetailNotFound))
}

func TestShoppingService_RecomputeTotal(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	stale := &entity.ShoppingLog{
		ID:          logID,
		OwnerID:     ownerID,
		TotalAmount: 1,
		Details:     []*entity.ShoppingDetail{newTestDetail(logID, "Telur", 2, 1.5)},
	}

	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(stale, nil)
	fx.shoppingRepo.EXPECT().UpdateShoppingLogTotal(ctx, logID, 3.0).Return(nil)

	log, err := fx.service.RecomputeTotal(ctx, ownerID, logID)

	require.NoError(t, err)
	assert.InDelta(t, 3.0, log.TotalAmount, 0.0001)
}

func TestShoppingService_ReconcileTotal(t *testing.T) {
	logID := uuid.New()

	tests := []struct {
		name        string
		found       *entity.ShoppingLog
		findErr     error
		wantTotal   *float64
		wantChanged bool
	}{
		{
			name: "stale total is rewritten",
			found: &entity.ShoppingLog{ID: logID, TotalAmount: 5, Details: []*entity.ShoppingDetail{
				newTestDetail(logID, "Telur", 2, 1.5),
			}},
			wantTotal:   floatPtr(3),
			wantChanged: true,
		},
		{
			name: "total already in sync",
			found: &entity.ShoppingLog{ID: logID, TotalAmount: 3, Details: []*entity.ShoppingDetail{
				newTestDetail(logID, "Telur", 2, 1.5),
			}},
		},
		{
			name:  "log without details keeps its total",
			found: &entity.ShoppingLog{ID: logID, TotalAmount: 42},
		},
		{
			name:    "deleted log is ignored",
			findErr: repository.ErrShoppingLogNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShoppingService(t)
			ctx := context.Background()

			expectTx(fx.txManager, fx.factory)
			fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(tt.found, tt.findErr)
			if tt.wantTotal != nil {
				fx.shoppingRepo.EXPECT().UpdateShoppingLogTotal(ctx, logID, *tt.wantTotal).Return(nil)
			}

			changed, err := fx.service.ReconcileTotal(ctx, logID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestShoppingService_AttachReceipt_ReplacesPreviousBlob(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	previous := receiptPrefix(ownerID) + logID.String() + "/old.jpg"

	fx.shoppingRepo.EXPECT().
		FindShoppingLogByID(ctx, logID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.ShoppingLog, error) {
			ref := previous

			return &entity.ShoppingLog{ID: logID, OwnerID: ownerID, ReceiptRef: &ref}, nil
		}).
		Twice()

	var uploadedKey string
	fx.receipts.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), []byte("jpeg-bytes"), "image/jpeg").
		Run(func(_ context.Context, key string, _ []byte, _ string) {
			uploadedKey = key
		}).
		Return(nil)
	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().UpdateShoppingLog(ctx, mock.AnythingOfType("*entity.ShoppingLog")).Return(nil)
	fx.receipts.EXPECT().Delete(ctx, previous).Return(nil)
	fx.expectEvent(service.EventShoppingUpdated, logID)

	updated, err := fx.service.AttachReceipt(ctx, ownerID, logID, &usecase.ReceiptInput{
		Filename:    "struk.JPG",
		ContentType: "image/jpeg; charset=binary",
		Data:        []byte("jpeg-bytes"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.ReceiptRef)
	assert.Equal(t, uploadedKey, *updated.ReceiptRef)
	assert.True(t, strings.HasPrefix(uploadedKey, receiptPrefix(ownerID)+logID.String()+"/"))
	assert.True(t, strings.HasSuffix(uploadedKey, ".jpg"))
}

func TestShoppingService_AttachReceipt_RemovesUploadWhenCommitFails(t *testing.T) {
	fx := createTestShoppingService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	logID := uuid.New()
	owned := &entity.ShoppingLog{ID: logID, OwnerID: ownerID}

	fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(owned, nil)
	fx.receipts.EXPECT().Put(ctx, mock.Anything, mock.Anything, "application/pdf").Return(nil)
	expectTx(fx.txManager, fx.factory)
	fx.shoppingRepo.EXPECT().UpdateShoppingLog(ctx, mock.Anything).Return(errors.New("deadlock detected"))
	fx.receipts.EXPECT().
		Delete(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, receiptPrefix(ownerID)) && strings.HasSuffix(key, ".pdf")
		})).
		Return(nil)

	updated, err := fx.service.AttachReceipt(ctx, ownerID, logID, &usecase.ReceiptInput{
		Filename:    "receipt.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.7"),
	})

	require.Error(t, err)
	assert.Nil(t, updated)
}

func TestShoppingService_AttachReceipt_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.ReceiptInput
		wantErr error
	}{
		{name: "empty file", input: &usecase.ReceiptInput{ContentType: "image/png"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "too large", input: &usecase.ReceiptInput{ContentType: "image/png", Data: make([]byte, 2048)}, wantErr: domainerrors.ErrReceiptTooLarge},
		{name: "unsupported type", input: &usecase.ReceiptInput{ContentType: "text/html", Data: []byte("<html>")}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShoppingService(t)

			updated, err := fx.service.AttachReceipt(context.Background(), uuid.New(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.Nil(t, updated)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestShoppingService_GetReceipt(t *testing.T) {
	ownerID := uuid.New()
	logID := uuid.New()

	t.Run("owned key", func(t *testing.T) {
		fx := createTestShoppingService(t)
		ctx := context.Background()
		key := receiptPrefix(ownerID) + logID.String() + "/a.png"

		fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID, ReceiptRef: &key}, nil)
		fx.receipts.EXPECT().Get(ctx, key).Return([]byte("png"), "image/png", nil)

		receipt, err := fx.service.GetReceipt(ctx, ownerID, logID)

		require.NoError(t, err)
		assert.Equal(t, "image/png", receipt.ContentType)
		assert.Equal(t, []byte("png"), receipt.Data)
	})

	t.Run("reference into another owner's prefix", func(t *testing.T) {
		fx := createTestShoppingService(t)
		ctx := context.Background()
		key := receiptPrefix(uuid.New()) + logID.String() + "/a.png"

		fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID, ReceiptRef: &key}, nil)

		receipt, err := fx.service.GetReceipt(ctx, ownerID, logID)

		require.Error(t, err)
		assert.Nil(t, receipt)
		assert.True(t, errors.Is(err, domainerrors.ErrReceiptNotFound))
	})
}

func TestShoppingService_DeleteShoppingLog(t *testing.T) {
	t.Run("owned receipt is removed", func(t *testing.T) {
		fx := createTestShoppingService(t)
		ctx := context.Background()
		ownerID := uuid.New()
		logID := uuid.New()
		key := receiptPrefix(ownerID) + logID.String() + "/a.png"

		expectTx(fx.txManager, fx.factory)
		fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID, ReceiptRef: &key}, nil)
		fx.shoppingRepo.EXPECT().DeleteShoppingLog(ctx, logID).Return(nil)
		fx.receipts.EXPECT().Delete(ctx, key).Return(nil)
		fx.expectEvent(service.EventShoppingDeleted, logID)

		require.NoError(t, fx.service.DeleteShoppingLog(ctx, ownerID, logID))
	})

	t.Run("foreign receipt reference is left alone", func(t *testing.T) {
		fx := createTestShoppingService(t)
		ctx := context.Background()
		ownerID := uuid.New()
		logID := uuid.New()
		key := "receipts/" + uuid.NewString() + "/x.png"

		expectTx(fx.txManager, fx.factory)
		fx.shoppingRepo.EXPECT().FindShoppingLogByID(ctx, logID).Return(&entity.ShoppingLog{ID: logID, OwnerID: ownerID, ReceiptRef: &key}, nil)
		fx.shoppingRepo.EXPECT().DeleteShoppingLog(ctx, logID).Return(nil)
		fx.expectEvent(service.EventShoppingDeleted, logID)

		require.NoError(t, fx.service.DeleteShoppingLog(ctx, ownerID, logID))
	})
}

func TestOwnsReceiptKey(t *testing.T) {
	ownerID := uuid.New()

	assert.True(t, ownsReceiptKey(ownerID, receiptPrefix(ownerID)+"log/file.png"))
	assert.False(t, ownsReceiptKey(ownerID, receiptPrefix(uuid.New())+"log/file.png"))
	assert.False(t, ownsReceiptKey(ownerID, receiptPrefix(ownerID)+"../other/file.png"))
}
