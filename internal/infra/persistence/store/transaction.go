package store

import (
	"context"

	"lifelink/internal/domain/repository"
	"lifelink/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by GORM transactions.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute delegates to gorm.DB.Transaction, which commits on success and rolls
// back on error or panic. Errors from fn come back unwrapped so callers can
// still match domain errors.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepos{tx: tx})

		return fnErr
	})
	if err == nil || fnErr != nil {
		return err
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepos binds every repository to the same *gorm.DB transaction.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) NewUserRepository() repository.UserRepository { return NewUserRepository(r.tx) }

func (r txRepos) NewAuthRepository() repository.AuthRepository { return NewAuthRepository(r.tx) }

func (r txRepos) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepos) NewQRCodeRepository() repository.QRCodeRepository { return NewQRCodeRepository(r.tx) }

func (r txRepos) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(r.tx)
}
