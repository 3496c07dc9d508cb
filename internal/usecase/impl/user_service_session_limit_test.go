package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/errors"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionLimitLogin = &usecase.LoginInput{Email: "sari@example.com", Password: "Password123!"}

// expectCredentials sets up a login that passes the password check for user.
func (fx userServiceFixtures) expectCredentials(user *entity.User) {
	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, sessionLimitLogin.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(sessionLimitLogin.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
}

func TestUserService_Login_SessionLimit(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		wantErr    error
		wantStored bool
	}{
		{name: "below limit", active: 1, wantStored: true},
		{name: "at limit", active: 2, wantErr: domainerrors.ErrSessionLimitExceeded},
		{name: "above limit", active: 5, wantErr: domainerrors.ErrSessionLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 2)

			ctx := context.Background()
			user := &entity.User{ID: uuid.New(), Email: sessionLimitLogin.Email}

			fx.expectCredentials(user)
			fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access-1", "refresh-1", nil)
			expectTx(fx.txManager, fx.factory)

			lock := fx.userRepo.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(nil)
			count := fx.refreshTokenRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(tt.active, nil)
			mock.InOrder(lock.Call, count.Call)

			if tt.wantStored {
				fx.tokenService.EXPECT().HashToken("refresh-1").Return("hash-refresh-1")
				fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(0)
				fx.refreshTokenRepo.EXPECT().
					CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
						return token.UserID == user.ID && token.TokenHash == "hash-refresh-1"
					})).
					Return(nil)
			}

			output, err := fx.service.Login(ctx, sessionLimitLogin)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, output)
				assert.True(t, errors.Is(err, tt.wantErr))
				fx.refreshTokenRepo.AssertNotCalled(t, "CreateRefreshToken", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "refresh-1", output.RefreshToken)
		})
	}
}

func TestUserService_Login_SessionLockFailure(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: sessionLimitLogin.Email}
	lockErr := errors.New("lock timeout")

	fx.expectCredentials(user)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access-1", "refresh-1", nil)
	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(lockErr)

	output, err := fx.service.Login(ctx, sessionLimitLogin)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, lockErr))
	fx.refreshTokenRepo.AssertNotCalled(t, "CountActiveSessionsByUserID", mock.Anything, mock.Anything)
}

func TestUserService_Login_NoLimitSkipsTransaction(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: sessionLimitLogin.Email}

	fx.expectCredentials(user)
	fx.expectTokenIssue(user.ID, "access-1", "refresh-1")
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	_, err := fx.service.Login(ctx, sessionLimitLogin)

	require.NoError(t, err)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "AcquireSessionMutex", mock.Anything, mock.Anything)
}

// The user row lock serialises concurrent logins: it is taken inside the
// transaction and released when the transaction ends.
func TestUserService_Login_SessionLimitHoldsUnderConcurrency(t *testing.T) {
	const (
		maxActiveSessions = 3
		logins            = 10
	)

	fx := createTestUserService(t, maxActiveSessions)
	user := &entity.User{ID: uuid.New(), Email: sessionLimitLogin.Email}

	var (
		rowLock   sync.Mutex
		active    atomic.Int32
		lockCalls atomic.Int32
	)

	fx.expectCredentials(user)
	fx.expectTokenIssue(user.ID, "access-1", "refresh-1")
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			defer rowLock.Unlock()

			return fn(fx.factory)
		})
	fx.userRepo.EXPECT().AcquireSessionMutex(mock.Anything, user.ID).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			rowLock.Lock()
			lockCalls.Add(1)

			return nil
		})
	fx.refreshTokenRepo.EXPECT().CountActiveSessionsByUserID(mock.Anything, user.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (int, error) {
			return int(active.Load()), nil
		})
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(context.Context, *entity.RefreshToken) error {
			active.Add(1)

			return nil
		})

	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
		rejected atomic.Int32
	)
	for range logins {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.Login(context.Background(), sessionLimitLogin)
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, domainerrors.ErrSessionLimitExceeded):
				rejected.Add(1)
			default:
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(maxActiveSessions), accepted.Load())
	assert.Equal(t, int32(logins-maxActiveSessions), rejected.Load())
	assert.Equal(t, int32(logins), lockCalls.Load())
	assert.Equal(t, int32(maxActiveSessions), active.Load())
}
