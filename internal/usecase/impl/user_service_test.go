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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	factory          *mockRepo.MockRepositoryFactory
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	// Inside transactions the factory hands out the same mocks.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().AuthRepo().Return(authRepo).Maybe()
	factory.EXPECT().RefreshTokenRepo().Return(refreshTokenRepo).Maybe()

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		factory:          factory,
	}
}

func (fx userServiceFixtures) expectTokenIssue(userID any, access, refresh string) {
	fx.tokenService.EXPECT().GenerateTokens(userID).Return(access, refresh, nil)
	fx.tokenService.EXPECT().HashToken(refresh).Return("hash-" + refresh)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "  Test@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
		Return(nil, repository.ErrAuthNotFound)

	var createdUser *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			createdUser = user
		}).
		Return(nil)

	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeEmail &&
				auth.ProviderUserID == "test@example.com" &&
				auth.PasswordHash == "hashed_password"
		})).
		Return(nil)

	fx.expectTokenIssue(mock.AnythingOfType("uuid.UUID"), "access-1", "refresh-1")
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "hash-refresh-1"
		})).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "Test User", output.User.Name)
	assert.Equal(t, "access-1", output.AccessToken)
	assert.Equal(t, "refresh-1", output.RefreshToken)
	require.NotNil(t, createdUser)
	assert.Equal(t, createdUser.ID, output.User.ID)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_InvalidInput(t *testing.T) {
	fx := createTestUserService(t, 0)

	output, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     " ",
		Email:    "not-an-email",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Name: "Test User"}
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}

	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.expectTokenIssue(user.ID, "access-1", "refresh-1")
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "access-1", output.AccessToken)
	assert.Equal(t, "refresh-1", output.RefreshToken)
}

func TestUserService_Login_ReadsCredentialsFromPrimary(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.authRepo.EXPECT().
		FindAuthentication(mock.MatchedBy(repository.IsStrongRead), entity.ProviderTypeEmail, "test@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "test@example.com", Password: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_InvalidPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	input := &usecase.LoginInput{Email: "test@example.com", Password: "wrong"}

	fx.authRepo.EXPECT().
		FindAuthentication(mock.Anything, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

	output, err := fx.service.Login(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-old").
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-old").Return("hash-refresh-old")
	expectTx(fx.txManager, fx.factory)

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "hash-refresh-old").
		Return(&entity.RefreshToken{UserID: user.ID, TokenHash: "hash-refresh-old", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokenIssue(user.ID, "access-new", "refresh-new")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash-refresh-old").Return(nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "hash-refresh-new"
		})).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-old"})

	require.NoError(t, err)
	assert.Equal(t, "access-new", output.AccessToken)
	assert.Equal(t, "refresh-new", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-old").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-old").Return("hash-refresh-old")
	expectTx(fx.txManager, fx.factory)
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "hash-refresh-old").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-old"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_InvalidSignature(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		wantErr   bool
	}{
		{name: "known token", deleteErr: nil},
		{name: "unknown token is idempotent", deleteErr: repository.ErrRefreshTokenNotFound},
		{name: "database failure", deleteErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			ctx := context.Background()

			fx.tokenService.EXPECT().HashToken("refresh-1").Return("hash-refresh-1")
			fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash-refresh-1").Return(tt.deleteErr)

			err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-1"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_CleanupExpiredSessions(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(int64(4), nil)

	deleted, err := fx.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
