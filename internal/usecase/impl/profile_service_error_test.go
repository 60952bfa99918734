package impl

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"
	mockRepo "lifelink/internal/mocks/repository"
	"lifelink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileMockFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
	codeRepo    *mockRepo.MockQRCodeRepository
}

func createMockedProfileService(t *testing.T) profileMockFixtures {
	f := profileMockFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		codeRepo:    mockRepo.NewMockQRCodeRepository(t),
	}
	f.service = NewProfileService(ProfileServiceParams{
		TxManager:   f.txManager,
		UserRepo:    f.userRepo,
		ProfileRepo: f.profileRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

// inTransaction runs the callback against the mocked factory.
func (f profileMockFixtures) inTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Once()
	f.factory.EXPECT().NewQRCodeRepository().Return(f.codeRepo).Once()
	f.factory.EXPECT().NewProfileRepository().Return(f.profileRepo).Once()
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Once()
}

func TestProfileService_SaveProfile_FindProfileError(t *testing.T) {
	f := createMockedProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	dbErr := errors.New("db error")

	f.inTransaction(ctx)
	f.codeRepo.EXPECT().FindByCode(ctx, "LL-AB12CD34").
		Return(&entity.QRCode{ID: uuid.New(), Code: "LL-AB12CD34", Status: entity.CodeStatusUnused}, nil).Once()
	f.profileRepo.EXPECT().FindActiveByCode(ctx, "LL-AB12CD34").Return(nil, dbErr).Once()

	profile, err := f.service.SaveProfile(ctx, userID, usecase.SaveProfileInput{Code: "LL-AB12CD34", Details: validDetails()})

	assert.Nil(t, profile)
	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to find existing profile")
}

func TestProfileService_SaveProfile_SaveError(t *testing.T) {
	f := createMockedProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.inTransaction(ctx)
	f.codeRepo.EXPECT().FindByCode(ctx, "LL-AB12CD34").
		Return(&entity.QRCode{ID: uuid.New(), Code: "LL-AB12CD34", Status: entity.CodeStatusUnused}, nil).Once()
	f.profileRepo.EXPECT().FindActiveByCode(ctx, "LL-AB12CD34").Return(nil, repository.ErrProfileNotFound).Once()
	f.profileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.EmergencyProfile")).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to save profile")).Once()

	_, err := f.service.SaveProfile(ctx, userID, usecase.SaveProfileInput{Code: "LL-AB12CD34", Details: validDetails()})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestProfileService_ListMyProfiles_FindError(t *testing.T) {
	f := createMockedProfileService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), QRCodes: []string{"LL-AB12CD34"}}
	dbErr := errors.New("db error")

	f.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil).Once()
	f.profileRepo.EXPECT().FindByCodes(ctx, []string{"LL-AB12CD34"}).Return(nil, dbErr).Once()

	profiles, err := f.service.ListMyProfiles(ctx, owner.ID)

	assert.Nil(t, profiles)
	require.ErrorIs(t, err, dbErr)
}

func TestProfileService_GetMyProfile_Errors(t *testing.T) {
	t.Run("owner without the code never reaches the store", func(t *testing.T) {
		f := createMockedProfileService(t)
		ctx := context.Background()
		owner := &entity.User{ID: uuid.New(), QRCodes: []string{}}
		f.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil).Once()

		_, err := f.service.GetMyProfile(ctx, owner.ID, "LL-AB12CD34")

		requireAppError(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := createMockedProfileService(t)
		ctx := context.Background()
		owner := &entity.User{ID: uuid.New(), QRCodes: []string{"LL-AB12CD34"}}
		dbErr := errors.New("db error")
		f.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil).Once()
		f.profileRepo.EXPECT().FindActiveByCode(ctx, "LL-AB12CD34").Return(nil, dbErr).Once()

		_, err := f.service.GetMyProfile(ctx, owner.ID, "LL-AB12CD34")

		require.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to load profile")
	})
}
