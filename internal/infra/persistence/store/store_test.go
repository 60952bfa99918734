package store

import (
	"context"
	"testing"
	"time"

	"lifelink/config"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{Driver: config.DriverSQLite}
	cfg.SQLite.Path = sqliteMemory

	db, err := Open(cfg, logger.Discard)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createCode(t *testing.T, repo repository.QRCodeRepository, value string, status entity.CodeStatus) *entity.QRCode {
	t.Helper()

	code := &entity.QRCode{Code: value, Status: status}
	require.NoError(t, repo.Create(context.Background(), code))

	return code
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Email: "ana@example.com", Name: "Other"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Empty(t, found.QRCodes)
	})

	t.Run("update codes", func(t *testing.T) {
		user.AddCode("LL-AAAA0001")
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"LL-AAAA0001"}, found.QRCodes)
	})

	t.Run("update missing", func(t *testing.T) {
		err := repo.Update(ctx, &entity.User{ID: uuid.New(), Email: "x@example.com"})
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("save keeps created at", func(t *testing.T) {
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		imported := &entity.User{ID: uuid.New(), Email: "imported@example.com", Name: "Imp", CreatedAt: created}
		require.NoError(t, repo.Save(ctx, imported))

		imported.Name = "Imported"
		require.NoError(t, repo.Save(ctx, imported))

		found, err := repo.FindByID(ctx, imported.ID)
		require.NoError(t, err)
		assert.Equal(t, "Imported", found.Name)
		assert.True(t, created.Equal(found.CreatedAt))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestAuthAndRefreshTokenRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	user := &entity.User{Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	authRepo := NewAuthRepository(db)
	require.NoError(t, authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}))

	auth, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, auth.UserID)

	_, err = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, "other@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	tokenRepo := NewRefreshTokenRepository(db)
	require.NoError(t, tokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "live",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, tokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "expired",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	found, err := tokenRepo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	_, err = tokenRepo.FindRefreshTokenByHash(ctx, "expired")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	require.NoError(t, tokenRepo.DeleteRefreshTokenByHash(ctx, "live"))
	assert.ErrorIs(t, tokenRepo.DeleteRefreshTokenByHash(ctx, "live"), repository.ErrRefreshTokenNotFound)
	require.NoError(t, tokenRepo.DeleteRefreshTokensByUserID(ctx, user.ID))
}

func TestQRCodeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewQRCodeRepository(newTestDB(t))

	code := createCode(t, repo, "LL-AAAA0001", entity.CodeStatusUnused)

	t.Run("duplicate value", func(t *testing.T) {
		err := repo.Create(ctx, &entity.QRCode{Code: "LL-AAAA0001", Status: entity.CodeStatusUnused})
		assert.ErrorIs(t, err, repository.ErrQRCodeDuplicate)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, "ll-aaaa0001")
		assert.ErrorIs(t, err, repository.ErrQRCodeNotFound)
	})

	t.Run("increment scans", func(t *testing.T) {
		require.NoError(t, repo.IncrementScans(ctx, code.Code))
		require.NoError(t, repo.IncrementScans(ctx, code.Code))

		found, err := repo.FindByCode(ctx, code.Code)
		require.NoError(t, err)
		assert.EqualValues(t, 2, found.ScansCount)
	})

	t.Run("increment unknown", func(t *testing.T) {
		assert.ErrorIs(t, repo.IncrementScans(ctx, "LL-MISSING0"), repository.ErrQRCodeNotFound)
	})

	t.Run("save links", func(t *testing.T) {
		found, err := repo.FindByID(ctx, code.ID)
		require.NoError(t, err)

		userID, profileID := uuid.New(), uuid.New()
		found.Link(userID, profileID)
		require.NoError(t, repo.Save(ctx, found))

		linked, err := repo.FindByCode(ctx, code.Code)
		require.NoError(t, err)
		assert.Equal(t, entity.CodeStatusLinked, linked.Status)
		assert.Equal(t, userID, *linked.LinkedUserID)
		assert.Equal(t, profileID, *linked.EmergencyInfoID)
		assert.EqualValues(t, 2, linked.ScansCount)
	})

	t.Run("count and list", func(t *testing.T) {
		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	profile := &entity.EmergencyProfile{QRCode: "LL-AAAA0001", Name: "Ana", IsActive: true}
	require.NoError(t, repo.Save(ctx, profile))
	require.NotEqual(t, uuid.Nil, profile.ID)
	createdAt := profile.CreatedAt

	require.NoError(t, repo.Save(ctx, &entity.EmergencyProfile{QRCode: "LL-AAAA0002", Name: "Off", IsActive: false}))

	t.Run("overwrite keeps identity", func(t *testing.T) {
		profile.BloodGroup = "O+"
		require.NoError(t, repo.Save(ctx, profile))

		found, err := repo.FindByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, "O+", found.BloodGroup)
		assert.True(t, createdAt.Equal(found.CreatedAt))
	})

	t.Run("active by code", func(t *testing.T) {
		found, err := repo.FindActiveByCode(ctx, "LL-AAAA0001")
		require.NoError(t, err)
		assert.Equal(t, profile.ID, found.ID)

		_, err = repo.FindActiveByCode(ctx, "LL-AAAA0002")
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	})

	t.Run("by codes", func(t *testing.T) {
		found, err := repo.FindByCodes(ctx, []string{"LL-AAAA0001", "LL-AAAA0002", "LL-NONE0000"})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		empty, err := repo.FindByCodes(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("touch last scanned", func(t *testing.T) {
		at := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
		require.NoError(t, repo.TouchLastScanned(ctx, profile.ID, at))

		found, err := repo.FindByID(ctx, profile.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastScanned)
		assert.True(t, at.Equal(*found.LastScanned))

		assert.ErrorIs(t, repo.TouchLastScanned(ctx, uuid.New(), at), repository.ErrProfileNotFound)
	})
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewQRCodeRepository().Create(ctx, &entity.QRCode{Code: "LL-ROLLBACK", Status: entity.CodeStatusUnused}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = NewQRCodeRepository(db).FindByCode(ctx, "LL-ROLLBACK")
	assert.ErrorIs(t, err, repository.ErrQRCodeNotFound)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewQRCodeRepository().Create(ctx, &entity.QRCode{Code: "LL-COMMIT00", Status: entity.CodeStatusUnused})
	})
	require.NoError(t, err)

	_, err = NewQRCodeRepository(db).FindByCode(ctx, "LL-COMMIT00")
	assert.NoError(t, err)
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	codes := NewQRCodeRepository(db)

	reports, err := NewReportRepository(db)
	require.NoError(t, err)

	t.Run("empty registry", func(t *testing.T) {
		stats, err := reports.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &entity.AdminStats{}, stats)
	})

	owner := uuid.New()
	for i, value := range []string{"LL-A0000001", "LL-A0000002", "LL-A0000003", "LL-A0000004"} {
		code := createCode(t, codes, value, entity.CodeStatusUnused)
		if i < 2 {
			code.Link(owner, uuid.New())
			code.ScansCount = int64(i + 1)
			require.NoError(t, codes.Save(ctx, code))
		}
	}

	t.Run("stats", func(t *testing.T) {
		stats, err := reports.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &entity.AdminStats{TotalCodes: 4, LinkedCodes: 2, TotalScans: 3, ActiveUsers: 1}, stats)
	})

	t.Run("page of all", func(t *testing.T) {
		page, total, err := reports.ListCodes(ctx, entity.CodeFilter{Page: 1, PageSize: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, page, 3)
		assert.Equal(t, "LL-A0000004", page[0].Code)
	})

	t.Run("second page", func(t *testing.T) {
		page, total, err := reports.ListCodes(ctx, entity.CodeFilter{Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, page, 1)
		assert.Equal(t, "LL-A0000001", page[0].Code)
	})

	t.Run("status filter", func(t *testing.T) {
		linked := entity.CodeStatusLinked
		page, total, err := reports.ListCodes(ctx, entity.CodeFilter{Status: &linked, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, code := range page {
			assert.Equal(t, entity.CodeStatusLinked, code.Status)
			require.NotNil(t, code.LinkedUserID)
			assert.Equal(t, owner, *code.LinkedUserID)
		}
	})
}
