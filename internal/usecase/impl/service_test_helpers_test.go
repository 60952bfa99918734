package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lifelink/config"
	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"
	"lifelink/internal/infra/persistence/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:  &config.AuthConfig{BcryptCost: 4},
		Codes: &config.CodesConfig{Prefix: "LL-", Length: 8, PageSize: 10},
	}
	cfg.Admin.Emails = []string{"admin@lifelink.test"}

	return cfg
}

// testStore is an in-memory SQLite registry with repositories bound to the connection pool.
type testStore struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	qrCodeRepo       repository.QRCodeRepository
	profileRepo      repository.ProfileRepository
	reportRepo       repository.ReportRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	cfg := config.DatabaseConfig{Driver: config.DriverSQLite}
	cfg.SQLite.Path = ":memory:"

	db, err := store.Open(cfg, logger.Discard)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	reportRepo, err := store.NewReportRepository(db)
	require.NoError(t, err)

	return &testStore{
		txManager:        store.NewTransactionManager(db),
		userRepo:         store.NewUserRepository(db),
		authRepo:         store.NewAuthRepository(db),
		refreshTokenRepo: store.NewRefreshTokenRepository(db),
		qrCodeRepo:       store.NewQRCodeRepository(db),
		profileRepo:      store.NewProfileRepository(db),
		reportRepo:       reportRepo,
	}
}

func (s *testStore) seedUser(t *testing.T, email string, codes ...string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Owner", QRCodes: codes}
	if user.QRCodes == nil {
		user.QRCodes = []string{}
	}
	require.NoError(t, s.userRepo.Create(context.Background(), user))

	return user
}

func (s *testStore) seedCode(t *testing.T, value string, status entity.CodeStatus) *entity.QRCode {
	t.Helper()

	code := &entity.QRCode{Code: value, Status: status}
	require.NoError(t, s.qrCodeRepo.Create(context.Background(), code))

	return code
}

// requireAppError asserts that err carries a domain error with the given code.
func requireAppError(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}
