// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"mealplanner/config"
	deliverycontext "mealplanner/internal/delivery/context"
	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"
	"mealplanner/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the account with its email credential and signs the user in.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	verr := &domainerrors.ValidationError{}
	name := requireText(verr, "name", input.Name)
	email := normalizeEmail(verr, input.Email)
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{ID: uuid.New(), Name: name, Email: email}
	var accessToken, refreshToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		accessToken, refreshToken, err = srv.tokenService.GenerateTokens(newUser.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		return srv.storeRefreshTokenWithRepo(ctx, repoFactory.RefreshTokenRepo(), newUser.ID, refreshToken)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: newUser}, nil
}

// Login verifies the email credential and issues a new token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("body", "is required")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	// Credentials may have been written moments ago, read them from the primary.
	strongCtx := repository.WithStrongRead(ctx)

	authRecord, err := srv.authRepo.FindAuthentication(strongCtx, entity.ProviderTypeEmail, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(strongCtx, authRecord.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load login user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, loggedInUser.ID, refreshToken); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: loggedInUser}, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if srv.maxActiveSessions > 0 {
		// Lock, count and insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshTokenWithLimit(ctx, repoFactory, userID, refreshToken)
		}); err != nil {
			return errors.Wrap(err, "failed to execute user login transaction")
		}

		return nil
	}

	return srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, userID, refreshToken)
}

// RefreshToken rotates the refresh token: the presented token is revoked and a new pair issued.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	if input == nil || input.RefreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked or expired")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID || stored.IsExpired(srv.now()) {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token does not match its session")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke rotated refresh token")
		}
		if err := srv.storeRefreshTokenWithRepo(ctx, refreshRepo, user.ID, refreshToken); err != nil {
			return err
		}

		output = usecase.AuthOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &output, nil
}

// Logout revokes the refresh token. Unknown tokens are treated as already logged out.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil || input.RefreshToken == "" {
		return domainerrors.NewValidationError("refreshToken", "is required")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout with unknown refresh token")

			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	return user, nil
}

// CleanupExpiredSessions deletes refresh tokens past their expiry.
func (srv *userService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}
	if deleted > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("count", deleted))
	}

	return deleted, nil
}

// storeRefreshTokenWithLimit enforces maxActiveSessions while holding the user row lock.
func (srv *userService) storeRefreshTokenWithLimit(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshToken string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to lock user row for session limit check")
	}

	activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to count active sessions")
	}
	if activeSessions >= srv.maxActiveSessions {
		return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
	}

	return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, userID, refreshToken)
}

func (srv *userService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshToken string) error {
	newRefreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

func normalizeEmail(verr *domainerrors.ValidationError, value string) string {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		verr.Add("email", "is required")

		return ""
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		verr.Add("email", "must be a valid email address")
	}

	return email
}
