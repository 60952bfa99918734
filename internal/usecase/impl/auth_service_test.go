package impl

import (
	"context"
	"testing"
	"time"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/domain/service"
	"lifelink/internal/errors"
	mockRepo "lifelink/internal/mocks/repository"
	mockSvc "lifelink/internal/mocks/service"
	"lifelink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	store        *testStore
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	st := newTestStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:        st.txManager,
		UserRepo:         st.userRepo,
		AuthRepo:         st.authRepo,
		RefreshTokenRepo: st.refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{service: srv, store: st, hasher: hasher, tokenService: tokenService}
}

func (f authServiceFixtures) expectSession(access, refresh string) {
	f.tokenService.EXPECT().GenerateTokens(mock.Anything, mock.Anything).Return(access, refresh, nil).Once()
	f.tokenService.EXPECT().HashToken(refresh).Return("hash-" + refresh).Once()
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour).Once()
}

func (f authServiceFixtures) register(t *testing.T, email string) *usecase.AuthOutput {
	t.Helper()

	f.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil).Once()
	f.hasher.EXPECT().Hash("Password123!").Return("hashed", nil).Once()
	f.expectSession("access-"+email, "refresh-"+email)

	out, err := f.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Jane Doe",
		Email:    email,
		Password: "Password123!",
	})
	require.NoError(t, err)

	return out
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil).Once()
	f.hasher.EXPECT().Hash("Password123!").Return("hashed", nil).Once()
	f.expectSession("access", "refresh")

	out, err := f.service.Register(ctx, usecase.RegisterInput{
		Name:     " Jane Doe ",
		Email:    "  Jane@Example.com ",
		Password: "Password123!",
	})
	require.NoError(t, err)

	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, entity.Roles{entity.RoleUser}, out.Roles)
	assert.Equal(t, "jane@example.com", out.User.Email)
	assert.Equal(t, "Jane Doe", out.User.Name)
	assert.Empty(t, out.User.QRCodes)

	authRecord, err := f.store.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, authRecord.UserID)
	assert.Equal(t, "hashed", authRecord.PasswordHash)

	stored, err := f.store.refreshTokenRepo.FindRefreshTokenByHash(ctx, "hash-refresh")
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, stored.UserID)
}

func TestAuthService_Register_AdminRole(t *testing.T) {
	f := createTestAuthService(t)

	out := f.register(t, "admin@lifelink.test")

	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, out.Roles)
}

func TestAuthService_Register_DuplicateEmailLeavesExistingUntouched(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	first := f.register(t, "jane@example.com")

	f.hasher.EXPECT().ValidatePasswordStrength("Another123!").Return(nil).Once()
	f.hasher.EXPECT().Hash("Another123!").Return("other-hash", nil).Once()

	_, err := f.service.Register(ctx, usecase.RegisterInput{Name: "Impostor", Email: "JANE@example.com", Password: "Another123!"})
	requireAppError(t, err, domainerrors.ErrUserAlreadyExists)

	user, err := f.store.userRepo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, user.ID)
	assert.Equal(t, "Jane Doe", user.Name)

	authRecord, err := f.store.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed", authRecord.PasswordHash)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"missing name", usecase.RegisterInput{Email: "a@example.com", Password: "Password123!"}},
		{"missing password", usecase.RegisterInput{Name: "A", Email: "a@example.com"}},
		{"malformed email", usecase.RegisterInput{Name: "A", Email: "not-an-email", Password: "Password123!"}},
		{"missing email", usecase.RegisterInput{Name: "A", Password: "Password123!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)

			_, err := f.service.Register(context.Background(), tt.input)
			requireAppError(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.EXPECT().ValidatePasswordStrength("weak").
		Return(domainerrors.ErrPasswordStrength.WithDetails("too short")).Once()

	_, err := f.service.Register(context.Background(), usecase.RegisterInput{Name: "A", Email: "a@example.com", Password: "weak"})
	requireAppError(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	registered := f.register(t, "jane@example.com")

	t.Run("success", func(t *testing.T) {
		f.hasher.EXPECT().Check("Password123!", "hashed").Return(true).Once()
		f.expectSession("login-access", "login-refresh")

		out, err := f.service.Login(ctx, usecase.LoginInput{Email: "Jane@Example.com", Password: "Password123!"})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, out.User.ID)
		assert.Equal(t, "login-access", out.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		f.hasher.EXPECT().Check("nope", "hashed").Return(false).Once()

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "nope"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("imported user without credential", func(t *testing.T) {
		f.store.seedUser(t, "imported@example.com")

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "imported@example.com", Password: "Password123!"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	registered := f.register(t, "jane@example.com")
	refresh := registered.RefreshToken

	t.Run("issues new access token", func(t *testing.T) {
		f.tokenService.EXPECT().ValidateRefreshToken(refresh).
			Return(&service.Claims{UserID: registered.User.ID, Type: service.TokenTypeRefresh}, nil).Once()
		f.tokenService.EXPECT().HashToken(refresh).Return("hash-" + refresh).Once()
		f.tokenService.EXPECT().GenerateTokens(registered.User.ID, []string{"user"}).Return("fresh", "unused", nil).Once()

		out, err := f.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: refresh})
		require.NoError(t, err)
		assert.Equal(t, "fresh", out.AccessToken)
	})

	t.Run("invalid signature", func(t *testing.T) {
		f.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed")).Once()

		_, err := f.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "garbage"})
		requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("revoked token", func(t *testing.T) {
		f.tokenService.EXPECT().ValidateRefreshToken("revoked").
			Return(&service.Claims{UserID: registered.User.ID}, nil).Once()
		f.tokenService.EXPECT().HashToken("revoked").Return("hash-revoked").Once()

		_, err := f.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: "revoked"})
		requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("owner mismatch", func(t *testing.T) {
		f.tokenService.EXPECT().ValidateRefreshToken(refresh).
			Return(&service.Claims{UserID: uuid.New()}, nil).Once()
		f.tokenService.EXPECT().HashToken(refresh).Return("hash-" + refresh).Once()

		_, err := f.service.RefreshToken(ctx, usecase.RefreshTokenInput{RefreshToken: refresh})
		requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Logout(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	registered := f.register(t, "jane@example.com")

	f.tokenService.EXPECT().HashToken(registered.RefreshToken).Return("hash-" + registered.RefreshToken).Twice()

	require.NoError(t, f.service.Logout(ctx, usecase.LogoutInput{RefreshToken: registered.RefreshToken}))

	_, err := f.store.refreshTokenRepo.FindRefreshTokenByHash(ctx, "hash-"+registered.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	// A second logout with the same token is a no-op.
	require.NoError(t, f.service.Logout(ctx, usecase.LogoutInput{RefreshToken: registered.RefreshToken}))

	err = f.service.Logout(ctx, usecase.LogoutInput{})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Me(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	registered := f.register(t, "jane@example.com")

	user, err := f.service.Me(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = f.service.Me(ctx, uuid.New())
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	authRepo := mockRepo.NewMockAuthRepository(t)
	srv := NewAuthService(AuthServiceParams{
		TxManager:        mockRepo.NewMockTransactionManager(t),
		UserRepo:         mockRepo.NewMockUserRepository(t),
		AuthRepo:         authRepo,
		RefreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		Hasher:           mockSvc.NewMockPasswordHasher(t),
		TokenService:     mockSvc.NewMockTokenService(t),
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	dbErr := errors.New("connection reset")
	authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "jane@example.com").Return(nil, dbErr).Once()

	_, err := srv.Login(context.Background(), usecase.LoginInput{Email: "jane@example.com", Password: "Password123!"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Register_RollsBackWhenCredentialFails(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		Hasher:           hasher,
		TokenService:     mockSvc.NewMockTokenService(t),
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	ctx := context.Background()
	hasher.EXPECT().ValidatePasswordStrength("Password123!").Return(nil).Once()
	hasher.EXPECT().Hash("Password123!").Return("hashed", nil).Once()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
	factory.EXPECT().NewUserRepository().Return(userRepo).Once()
	factory.EXPECT().NewAuthRepository().Return(authRepo).Once()
	userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound).Once()
	userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	authRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")).Once()

	_, err := srv.Register(ctx, usecase.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "Password123!"})
	requireAppError(t, err, domainerrors.ErrUserCreationFailed)
}
